package content

import (
	"time"

	"github.com/hitoshi/sonora/internal/model"
)

// SplitTourEvents は公演を開催日で「今後」と「過去」に振り分ける。
// 判定はDateのみで行い、Statusは参照しない。
// 基準日はrefのロケーションにおける暦日で、同日の公演は「今後」に含まれる。
// 各グループ内では入力の順序を保つ。
func SplitTourEvents(events []model.TourEvent, ref time.Time) (upcoming, past []model.TourEvent) {
	today := ref.Format(model.TourDateLayout)

	upcoming = make([]model.TourEvent, 0, len(events))
	past = make([]model.TourEvent, 0, len(events))
	for _, ev := range events {
		// YYYY-MM-DD は文字列比較で日付順になる
		if ev.Date >= today {
			upcoming = append(upcoming, ev)
		} else {
			past = append(past, ev)
		}
	}
	return upcoming, past
}

// TicketActionFor は公演カードに表示するチケット導線を決める。
func TicketActionFor(ev model.TourEvent) model.TicketAction {
	switch {
	case ev.TicketLink != "" && ev.Status == model.TourStatusAvailable:
		return model.TicketActionBuy
	case ev.Status == model.TourStatusSoldOut:
		return model.TicketActionSoldOut
	case ev.Status == model.TourStatusPast:
		return model.TicketActionFinished
	default:
		return model.TicketActionComingSoon
	}
}

// FindPostWithNeighbors はslugに一致する最初の記事と、配列上で隣接する前後の記事を返す。
// 前後関係は並び順のみで決まり、日付や内容は考慮しない。
// 一致する記事がない場合はPOST_NOT_FOUNDのAPIErrorを返す。
func FindPostWithNeighbors(posts []model.BlogPost, slug string) (model.PostNeighbors, error) {
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}

		n := model.PostNeighbors{Post: &posts[i]}
		if i > 0 {
			n.Previous = &posts[i-1]
		}
		if i < len(posts)-1 {
			n.Next = &posts[i+1]
		}
		return n, nil
	}
	return model.PostNeighbors{}, model.NewPostNotFoundError(slug)
}

// FindAlbum はIDに一致するアルバムを返す。
// 一致するアルバムがない場合はALBUM_NOT_FOUNDのAPIErrorを返す。
func FindAlbum(albums []model.Album, id int) (model.Album, error) {
	for _, a := range albums {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Album{}, model.NewAlbumNotFoundError(id)
}
