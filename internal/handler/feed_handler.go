package handler

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strings"
)

// rssDocument はRSS 2.0のルート要素。
type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// FeedHandler はブログのRSSフィードを配信するHTTPハンドラー。
type FeedHandler struct {
	source  ContentSource
	baseURL string
}

// NewFeedHandler はFeedHandlerを生成する。
// baseURLは記事リンクの生成に使う公開サイトのURL。
func NewFeedHandler(source ContentSource, baseURL string) *FeedHandler {
	return &FeedHandler{
		source:  source,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetFeed はブログ記事をRSS 2.0で返す。記事は表示順に並ぶ。
// GET /blog/feed.xml
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	site := h.source.Site()
	posts := h.source.Posts()

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := h.baseURL + "/blog/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
		})
	}

	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Name + " - Blog",
			Link:        h.baseURL + "/blog",
			Description: "Noticias de " + site.Name,
			Language:    "es-CL",
			Items:       items,
		},
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		slog.Error("failed to encode rss feed", slog.String("error", err.Error()))
	}
}
