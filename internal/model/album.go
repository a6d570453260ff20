// Package model はドメインモデルを定義する。
package model

import (
	"maps"
	"slices"
)

// Album はディスコグラフィーの1作品を表す。
type Album struct {
	ID          int     `yaml:"id"`
	Title       string  `yaml:"title"`
	Year        int     `yaml:"year"`
	CoverImage  string  `yaml:"cover_image"`
	Description string  `yaml:"description"`
	Tracks      []Track `yaml:"tracks"`

	// StreamingLinks はプラットフォーム名（spotify, appleMusic等）からURLへの対応。
	StreamingLinks map[string]string `yaml:"streaming_links"`
}

// Clone はTracksとStreamingLinksを含めて複製したAlbumを返す。
func (a Album) Clone() Album {
	a.Tracks = slices.Clone(a.Tracks)
	a.StreamingLinks = maps.Clone(a.StreamingLinks)
	return a
}

// Track はアルバム収録曲を表す。
type Track struct {
	Number   int    `yaml:"number"`
	Title    string `yaml:"title"`
	Duration string `yaml:"duration"` // m:ss
}
