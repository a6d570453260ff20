package contact

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags は改行を挟むブロック要素。
var blockTags = map[string]bool{
	"div": true, "p": true, "br": true, "h1": true, "h2": true, "h3": true,
	"li": true, "tr": true, "title": true,
}

// messageID は入力されたメッセージ本文を包む要素のid。
// この要素の中では改行と空行をそのまま残す。
const messageID = "message"

// PlainText はHTMLメール本文からテキストパートを生成する。
// head・style・scriptの中身は含めず、ブロック要素ごとに1行にまとめる。
// 空行は取り除くが、id="message"の要素内の段落区切りは保持する。
func PlainText(htmlBody string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(htmlBody))

	var (
		lines   []string
		current strings.Builder
		skip    int
		// msgDepth はid="message"の要素内にいる間の入れ子の深さ
		msgDepth int
		msg      strings.Builder
	)
	flush := func() {
		line := strings.TrimSpace(current.String())
		if line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}
	flushMessage := func() {
		text := strings.Trim(msg.String(), "\r\n")
		if strings.TrimSpace(text) != "" {
			for _, l := range strings.Split(text, "\n") {
				lines = append(lines, strings.TrimRight(l, " \t\r"))
			}
		}
		msg.Reset()
	}

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOFを含め、ここで終了する
			if msgDepth > 0 {
				flushMessage()
			}
			flush()
			return strings.Join(lines, "\n")

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, hasAttr := tokenizer.TagName()
			name := string(tn)
			if msgDepth > 0 {
				if tt == html.StartTagToken && !isVoid(name) {
					msgDepth++
				}
				if name == "br" {
					msg.WriteByte('\n')
				}
				continue
			}
			switch {
			case name == "head" || name == "style" || name == "script":
				if tt == html.StartTagToken {
					skip++
				}
			case blockTags[name]:
				flush()
			}
			if tt == html.StartTagToken && hasAttr && hasID(tokenizer, messageID) {
				flush()
				msgDepth = 1
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			name := string(tn)
			if msgDepth > 0 {
				msgDepth--
				if msgDepth == 0 {
					flushMessage()
				}
				continue
			}
			switch {
			case name == "head" || name == "style" || name == "script":
				if skip > 0 {
					skip--
				}
			case blockTags[name]:
				flush()
			}

		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(tokenizer.Text())
			if msgDepth > 0 {
				msg.WriteString(text)
				continue
			}
			// それ以外の空白はまとめ、改行ごとに行を分ける
			for i, part := range strings.Split(text, "\n") {
				if i > 0 {
					flush()
				}
				if f := strings.Join(strings.Fields(part), " "); f != "" {
					if current.Len() > 0 {
						current.WriteByte(' ')
					}
					current.WriteString(f)
				}
			}
		}
	}
}

// hasID は現在の開始タグのid属性がidと一致するかを返す。
func hasID(tokenizer *html.Tokenizer, id string) bool {
	for {
		key, val, more := tokenizer.TagAttr()
		if string(key) == "id" && string(val) == id {
			return true
		}
		if !more {
			return false
		}
	}
}

func isVoid(name string) bool {
	switch name {
	case "br", "img", "hr", "input", "meta", "link", "wbr":
		return true
	}
	return false
}
