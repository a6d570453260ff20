package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
)

func TestFeedHandler_GetFeed(t *testing.T) {
	h := NewFeedHandler(newTestStore(t), "https://sonoralacuca.com/")

	w := httptest.NewRecorder()
	h.GetFeed(w, httptest.NewRequest(http.MethodGet, "/blog/feed.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/rss+xml") {
		t.Errorf("Content-Type = %q", ct)
	}

	feed, err := gofeed.NewParser().ParseString(w.Body.String())
	if err != nil {
		t.Fatalf("failed to parse RSS: %v", err)
	}

	if feed.FeedType != "rss" {
		t.Errorf("feed type = %q, want rss", feed.FeedType)
	}
	if feed.Title != "Sonora La Cuca - Blog" {
		t.Errorf("title = %q", feed.Title)
	}
	if feed.Link != "https://sonoralacuca.com/blog" {
		t.Errorf("link = %q", feed.Link)
	}
	if len(feed.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Link != "https://sonoralacuca.com/blog/nuevo-album-2025" {
		t.Errorf("items[0].link = %q", first.Link)
	}
	if first.GUID != first.Link {
		t.Errorf("items[0].guid = %q, want link", first.GUID)
	}
	if first.Title != "¡Nuestro Nuevo Álbum Ya Está Aquí!" {
		t.Errorf("items[0].title = %q", first.Title)
	}
	if first.Description == "" {
		t.Error("items[0].description should carry the excerpt")
	}
}
