package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Sanitizer はレンダリング済みHTMLを安全化するインターフェース。
// security.ContentSanitizerServiceを抽象化する。
type Sanitizer interface {
	Sanitize(rawHTML string) string
}

// MarkdownRenderer はブログ本文のMarkdownをHTMLに変換する。
// goldmarkの出力を必ずサニタイザに通してから返す。
type MarkdownRenderer struct {
	md        goldmark.Markdown
	sanitizer Sanitizer
}

// NewMarkdownRenderer はMarkdownRendererを生成する。
func NewMarkdownRenderer(sanitizer Sanitizer) *MarkdownRenderer {
	return &MarkdownRenderer{
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: sanitizer,
	}
}

// Render はMarkdownをサニタイズ済みHTMLに変換する。
func (r *MarkdownRenderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}
