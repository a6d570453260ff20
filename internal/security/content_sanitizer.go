// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService はブログ本文をMarkdownから変換したHTMLをサニタイズし、
// コンテンツファイル経由で混入したスクリプト等から閲覧者を保護する。
// bluemondayライブラリを使用した許可リストベースのポリシーで、
// 安全なタグと属性のみを通過させる。
package security

import (
	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService はHTMLコンテンツのサニタイズ機能のインターフェースを定義する。
// ブログ本文のAPI応答・RSS配信前に使用される。
type ContentSanitizerService interface {
	// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
	// Markdownが生成しうるタグ（見出し、段落、リスト、引用、コード、表、リンク、画像）のみを通過させ、
	// script, iframe, styleタグおよびon*イベント属性を除去する。
	// 外部リンクにはtarget="_blank"とrel="noopener noreferrer"が自動付与される。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(rawHTML string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// ポリシーの内容:
//   - 許可タグ: h1-h6, p, br, hr, ul, ol, li, blockquote, pre, code, strong, em, del, table系, a, img
//   - 禁止タグ: script, iframe, style および全てのon*イベント属性
//   - URLスキーム: https, http, mailto と サイト内の相対パス
//   - aタグ: 外部リンクに target="_blank" と rel="noopener noreferrer" を自動付与
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.NewPolicy()

	// script, iframe, style等は許可リストに含めないことで自動的に除去される
	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em", "del",
		"table", "thead", "tbody", "tr", "th", "td",
	)

	// サイト内リンク（/fechas 等）と画像（/images/...）のため相対URLを許可する
	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("https", "http", "mailto")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	p.AllowAttrs("src", "alt").OnElements("img")

	// GFMの表の寄せ指定
	p.AllowAttrs("align").Matching(bluemonday.CellAlign).OnElements("th", "td")

	return &contentSanitizer{
		policy: p,
	}
}

// Sanitize はHTMLコンテンツをサニタイズして安全なHTMLを返す。
func (s *contentSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}
