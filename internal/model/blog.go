// Package model はドメインモデルを定義する。
package model

// BlogPost はブログ記事を表す。
// コレクション内の並び順がそのまま表示順であり、前後記事ナビゲーションの基準になる。
type BlogPost struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt"`
	Content     string `yaml:"content"` // Markdown
	CoverImage  string `yaml:"cover_image"`
	PublishDate string `yaml:"publish_date"` // 表示用文字列（ソート不可）
	Author      string `yaml:"author"`
}

// PostNeighbors は記事とその前後の記事を表す。
// 先頭の記事ではPrevious、末尾の記事ではNextがnilになる。
type PostNeighbors struct {
	Post     *BlogPost
	Previous *BlogPost
	Next     *BlogPost
}
