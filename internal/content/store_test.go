package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hitoshi/sonora/internal/model"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	tour, posts, albums := s.Summary()
	if tour != 6 || posts != 3 || albums != 3 {
		t.Errorf("summary = %d/%d/%d, want 6/3/3", tour, posts, albums)
	}

	if got := s.Posts()[0].Slug; got != "nuevo-album-2025" {
		t.Errorf("first post slug = %q, want nuevo-album-2025", got)
	}
	if got := s.TourEvents()[2].TicketLink; got != "" {
		t.Errorf("Valparaíso ticket link = %q, want empty", got)
	}
	if got := s.Site().Contact.BookingEmail; got != "contrataciones@sonoralacuca.com" {
		t.Errorf("booking email = %q", got)
	}
	if got := s.Albums()[0].StreamingLinks["deezer"]; got == "" {
		t.Error("first album should have a deezer link")
	}
	if got := s.Albums()[1].Tracks[6].Duration; got != "4:45" {
		t.Errorf("duration = %q, want 4:45", got)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := `
tour:
  - date: "2026-01-02"
    city: Talca
    venue: Gimnasio Regional
    status: Cancelado
posts:
  - slug: hola
    title: Hola
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ev := s.TourEvents()[0]; ev.Status != model.TourStatusCancelled || ev.City != "Talca" {
		t.Errorf("tour[0] = %+v", ev)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_RejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "duplicate slug",
			data:    "posts:\n  - slug: a\n  - slug: a\n",
			wantErr: "duplicate slug",
		},
		{
			name:    "empty slug",
			data:    "posts:\n  - title: sin slug\n",
			wantErr: "empty slug",
		},
		{
			name:    "duplicate album id",
			data:    "albums:\n  - id: 1\n  - id: 1\n",
			wantErr: "duplicate id",
		},
		{
			name:    "invalid status",
			data:    "tour:\n  - date: \"2025-01-01\"\n    status: Agotado\n",
			wantErr: "invalid status",
		},
		{
			name:    "invalid date",
			data:    "tour:\n  - date: \"17/09/2025\"\n    status: Disponible\n",
			wantErr: "invalid date",
		},
		{
			name:    "unknown key",
			data:    "tours: []\n",
			wantErr: "unmarshal content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	posts := s.Posts()
	posts[0].Title = "cambiado"
	tour := s.TourEvents()
	tour[0].Status = model.TourStatusCancelled

	if s.Posts()[0].Title == "cambiado" {
		t.Error("mutating Posts() result should not affect the store")
	}
	if s.TourEvents()[0].Status == model.TourStatusCancelled {
		t.Error("mutating TourEvents() result should not affect the store")
	}
}

func TestStore_Album(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	album, err := s.Album(s.Albums()[1].ID)
	if err != nil {
		t.Fatalf("Album returned error: %v", err)
	}
	if album.Title != s.Albums()[1].Title {
		t.Errorf("title = %q, want %q", album.Title, s.Albums()[1].Title)
	}

	if _, err := s.Album(9999); err == nil {
		t.Error("expected error for unknown album id")
	}
}

func TestStore_AlbumsAreDeepCopies(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	albums := s.Albums()
	albums[0].Tracks[0].Title = "cambiado"
	albums[0].StreamingLinks["spotify"] = "https://evil.example"

	album, err := s.Album(albums[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	album.Tracks[1].Title = "cambiado"
	delete(album.StreamingLinks, "deezer")

	fresh := s.Albums()[0]
	if fresh.Tracks[0].Title == "cambiado" || fresh.Tracks[1].Title == "cambiado" {
		t.Error("mutating returned tracks should not affect the store")
	}
	if fresh.StreamingLinks["spotify"] == "https://evil.example" {
		t.Error("mutating returned streaming links should not affect the store")
	}
	if fresh.StreamingLinks["deezer"] == "" {
		t.Error("deleting from returned streaming links should not affect the store")
	}
}
