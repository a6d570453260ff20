package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/sonora/internal/content"
	"github.com/hitoshi/sonora/internal/model"
)

// ContentSource はコンテンツハンドラーが必要とする読み取り専用ストアのインターフェース。
// content.Storeが実装する。
type ContentSource interface {
	Site() model.Site
	TourEvents() []model.TourEvent
	Posts() []model.BlogPost
	Albums() []model.Album
	Album(id int) (model.Album, error)
}

// MarkdownRenderer はブログ本文をHTMLに変換するインターフェース。
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

// ContentHandler はサイトコンテンツ（バンド情報、ツアー、ブログ、ディスコグラフィー）のHTTPハンドラー。
type ContentHandler struct {
	source   ContentSource
	renderer MarkdownRenderer
	location *time.Location
	now      func() time.Time
}

// NewContentHandler はContentHandlerを生成する。
// locationは「今日」の判定に使うタイムゾーンで、nilの場合はUTC。
func NewContentHandler(source ContentSource, renderer MarkdownRenderer, location *time.Location) *ContentHandler {
	if location == nil {
		location = time.UTC
	}
	return &ContentHandler{
		source:   source,
		renderer: renderer,
		location: location,
		now:      time.Now,
	}
}

// --- レスポンス型 ---

type socialsResponse struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	TikTok    string `json:"tiktok"`
	YouTube   string `json:"youtube"`
}

type siteContactResponse struct {
	BookingEmail string `json:"booking_email"`
	PressEmail   string `json:"press_email"`
}

type bandMemberResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"image_url"`
}

type navLinkResponse struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// siteResponse はサイト共通情報のレスポンス。
type siteResponse struct {
	Name        string               `json:"name"`
	Socials     socialsResponse      `json:"socials"`
	Contact     siteContactResponse  `json:"contact"`
	BandMembers []bandMemberResponse `json:"band_members"`
	NavLinks    []navLinkResponse    `json:"nav_links"`
}

// tourEventResponse は公演1件のレスポンス。
// statusはバッジ表示用のラベルをそのまま返し、ticket_actionはチケット導線の種類を返す。
type tourEventResponse struct {
	Date         string `json:"date"`
	City         string `json:"city"`
	Venue        string `json:"venue"`
	TicketLink   string `json:"ticket_link,omitempty"`
	Status       string `json:"status"`
	TicketAction string `json:"ticket_action"`
}

// tourResponse はツアー日程のレスポンス。
type tourResponse struct {
	Upcoming []tourEventResponse `json:"upcoming"`
	Past     []tourEventResponse `json:"past"`
}

// postSummaryResponse はブログ記事一覧のサマリーレスポンス。
type postSummaryResponse struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	CoverImage  string `json:"cover_image"`
	PublishDate string `json:"publish_date"`
	Author      string `json:"author"`
}

// postDetailResponse はブログ記事詳細のレスポンス。
type postDetailResponse struct {
	postSummaryResponse
	Content  string               `json:"content"` // Markdown原文
	HTML     string               `json:"html"`    // サニタイズ済みHTML
	Previous *postSummaryResponse `json:"previous"`
	Next     *postSummaryResponse `json:"next"`
}

type trackResponse struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// albumResponse はアルバムのレスポンス。
type albumResponse struct {
	ID             int               `json:"id"`
	Title          string            `json:"title"`
	Year           int               `json:"year"`
	CoverImage     string            `json:"cover_image"`
	Description    string            `json:"description"`
	Tracks         []trackResponse   `json:"tracks"`
	StreamingLinks map[string]string `json:"streaming_links"`
}

// --- ハンドラー ---

// GetSite はバンド情報を返す。
// GET /api/site
func (h *ContentHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSiteResponse(h.source.Site()))
}

// GetTour はツアー日程を今後の公演と過去の公演に分けて返す。
// GET /api/tour
func (h *ContentHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	upcoming, past := content.SplitTourEvents(h.source.TourEvents(), h.now().In(h.location))

	writeJSON(w, http.StatusOK, tourResponse{
		Upcoming: toTourEventResponses(upcoming),
		Past:     toTourEventResponses(past),
	})
}

// ListPosts はブログ記事の一覧を表示順で返す。
// GET /api/blog
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.source.Posts()
	resp := make([]postSummaryResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostSummary(&posts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPost はブログ記事と前後の記事を返す。
// GET /api/blog/{slug}
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	nb, err := content.FindPostWithNeighbors(h.source.Posts(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	html, err := h.renderer.Render(nb.Post.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := postDetailResponse{
		postSummaryResponse: toPostSummary(nb.Post),
		Content:             nb.Post.Content,
		HTML:                html,
	}
	if nb.Previous != nil {
		prev := toPostSummary(nb.Previous)
		resp.Previous = &prev
	}
	if nb.Next != nil {
		next := toPostSummary(nb.Next)
		resp.Next = &next
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListAlbums はディスコグラフィーを返す。
// GET /api/albums
func (h *ContentHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums := h.source.Albums()
	resp := make([]albumResponse, 0, len(albums))
	for _, a := range albums {
		resp = append(resp, toAlbumResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAlbum はアルバム1件を返す。
// GET /api/albums/{id}
func (h *ContentHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("el id del álbum debe ser un número"))
		return
	}

	album, err := h.source.Album(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(album))
}

// --- ヘルパー関数 ---

func toSiteResponse(s model.Site) siteResponse {
	members := make([]bandMemberResponse, 0, len(s.BandMembers))
	for _, m := range s.BandMembers {
		members = append(members, bandMemberResponse{Name: m.Name, Role: m.Role, ImageURL: m.ImageURL})
	}
	links := make([]navLinkResponse, 0, len(s.NavLinks))
	for _, l := range s.NavLinks {
		links = append(links, navLinkResponse{Name: l.Name, Href: l.Href})
	}
	return siteResponse{
		Name: s.Name,
		Socials: socialsResponse{
			Instagram: s.Socials.Instagram,
			Facebook:  s.Socials.Facebook,
			TikTok:    s.Socials.TikTok,
			YouTube:   s.Socials.YouTube,
		},
		Contact: siteContactResponse{
			BookingEmail: s.Contact.BookingEmail,
			PressEmail:   s.Contact.PressEmail,
		},
		BandMembers: members,
		NavLinks:    links,
	}
}

// toTourEventResponses は公演リストをレスポンスに変換する。空の場合も空配列を返す。
func toTourEventResponses(events []model.TourEvent) []tourEventResponse {
	resp := make([]tourEventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, tourEventResponse{
			Date:         ev.Date,
			City:         ev.City,
			Venue:        ev.Venue,
			TicketLink:   ev.TicketLink,
			Status:       string(ev.Status),
			TicketAction: string(content.TicketActionFor(ev)),
		})
	}
	return resp
}

func toPostSummary(p *model.BlogPost) postSummaryResponse {
	return postSummaryResponse{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		PublishDate: p.PublishDate,
		Author:      p.Author,
	}
}

func toAlbumResponse(a model.Album) albumResponse {
	tracks := make([]trackResponse, 0, len(a.Tracks))
	for _, t := range a.Tracks {
		tracks = append(tracks, trackResponse{Number: t.Number, Title: t.Title, Duration: t.Duration})
	}
	links := a.StreamingLinks
	if links == nil {
		links = map[string]string{}
	}
	return albumResponse{
		ID:             a.ID,
		Title:          a.Title,
		Year:           a.Year,
		CoverImage:     a.CoverImage,
		Description:    a.Description,
		Tracks:         tracks,
		StreamingLinks: links,
	}
}
