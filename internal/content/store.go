// Package content はサイトの静的コンテンツ（ツアー日程、ブログ、ディスコグラフィー、バンド情報）と
// それらから導出される表示用データを提供する。
//
// コンテンツは起動時にYAMLから1回だけ読み込み、以降は読み取り専用として扱う。
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hitoshi/sonora/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var defaultContent []byte

// document はコンテンツYAMLのトップレベル構造。
type document struct {
	Site   model.Site        `yaml:"site"`
	Tour   []model.TourEvent `yaml:"tour"`
	Posts  []model.BlogPost  `yaml:"posts"`
	Albums []model.Album     `yaml:"albums"`
}

// Store は読み取り専用のコンテンツストア。
// 返すスライスはコピーのため、呼び出し元が変更してもストアには影響しない。
// 複数のゴルーチンから同時に利用できる。
type Store struct {
	site   model.Site
	tour   []model.TourEvent
	posts  []model.BlogPost
	albums []model.Album
}

// Load はコンテンツYAMLを読み込み、整合性を検証したStoreを返す。
// pathが空の場合は埋め込みのデフォルトデータを使用する。
func Load(path string) (*Store, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse はYAMLバイト列からStoreを構築する。
// 未知のキーはエラーとして扱い、記述ミスを起動時に検出する。
func Parse(data []byte) (*Store, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}

	return &Store{
		site:   doc.Site,
		tour:   doc.Tour,
		posts:  doc.Posts,
		albums: doc.Albums,
	}, nil
}

// validate はコンテンツの不変条件を検証する。
// 違反はすべて集約して返す。
func (d *document) validate() error {
	var errs []error

	for i, ev := range d.Tour {
		if _, err := time.Parse(model.TourDateLayout, ev.Date); err != nil {
			errs = append(errs, fmt.Errorf("tour[%d]: invalid date %q", i, ev.Date))
		}
		if !ev.Status.Valid() {
			errs = append(errs, fmt.Errorf("tour[%d]: invalid status %q", i, ev.Status))
		}
	}

	slugs := make(map[string]int, len(d.Posts))
	for i, p := range d.Posts {
		if p.Slug == "" {
			errs = append(errs, fmt.Errorf("posts[%d]: empty slug", i))
			continue
		}
		if prev, dup := slugs[p.Slug]; dup {
			errs = append(errs, fmt.Errorf("posts[%d]: duplicate slug %q (first at posts[%d])", i, p.Slug, prev))
			continue
		}
		slugs[p.Slug] = i
	}

	ids := make(map[int]int, len(d.Albums))
	for i, a := range d.Albums {
		if prev, dup := ids[a.ID]; dup {
			errs = append(errs, fmt.Errorf("albums[%d]: duplicate id %d (first at albums[%d])", i, a.ID, prev))
			continue
		}
		ids[a.ID] = i
	}

	return errors.Join(errs...)
}

// Site はサイト共通情報を返す。
func (s *Store) Site() model.Site {
	site := s.site
	site.BandMembers = append([]model.BandMember(nil), s.site.BandMembers...)
	site.NavLinks = append([]model.NavLink(nil), s.site.NavLinks...)
	return site
}

// TourEvents は全公演を定義順で返す。
func (s *Store) TourEvents() []model.TourEvent {
	return append([]model.TourEvent(nil), s.tour...)
}

// Posts は全ブログ記事を表示順で返す。
func (s *Store) Posts() []model.BlogPost {
	return append([]model.BlogPost(nil), s.posts...)
}

// Albums は全アルバムを定義順で返す。TracksとStreamingLinksも複製する。
func (s *Store) Albums() []model.Album {
	albums := make([]model.Album, len(s.albums))
	for i, a := range s.albums {
		albums[i] = a.Clone()
	}
	return albums
}

// Summary はストアの件数を返す。起動ログ用。
func (s *Store) Summary() (tour, posts, albums int) {
	return len(s.tour), len(s.posts), len(s.albums)
}

// Album はIDでアルバムを検索する。見つからない場合はALBUM_NOT_FOUNDのAPIErrorを返す。
func (s *Store) Album(id int) (model.Album, error) {
	album, err := FindAlbum(s.albums, id)
	if err != nil {
		return model.Album{}, err
	}
	return album.Clone(), nil
}
