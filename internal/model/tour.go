// Package model はドメインモデルを定義する。
package model

// TourStatus はコンサートの販売状況バッジを表す。
// 値はサイト上にそのまま表示されるラベルでもある。
type TourStatus string

const (
	// TourStatusAvailable はチケット販売中。
	TourStatusAvailable TourStatus = "Disponible"
	// TourStatusSoldOut は完売。
	TourStatusSoldOut TourStatus = "Vendido"
	// TourStatusCancelled は中止。
	TourStatusCancelled TourStatus = "Cancelado"
	// TourStatusPast は終了済み。
	TourStatusPast TourStatus = "Pasado"
)

// Valid はステータスが定義済みの値かどうかを返す。
func (s TourStatus) Valid() bool {
	switch s {
	case TourStatusAvailable, TourStatusSoldOut, TourStatusCancelled, TourStatusPast:
		return true
	default:
		return false
	}
}

// TourDateLayout はTourEvent.Dateの書式。文字列比較で日付順になる。
const TourDateLayout = "2006-01-02"

// TourEvent はツアーの1公演を表す。
// Statusは表示用であり、Dateとは独立に設定される（Dateが未来でもPasadoになり得る）。
type TourEvent struct {
	Date       string     `yaml:"date"` // YYYY-MM-DD
	City       string     `yaml:"city"`
	Venue      string     `yaml:"venue"`
	TicketLink string     `yaml:"ticket_link"` // 未定の場合は空
	Status     TourStatus `yaml:"status"`
}

// TicketAction は公演カードに表示するチケット導線の種類。
type TicketAction string

const (
	// TicketActionBuy はチケット購入リンクを表示する。
	TicketActionBuy TicketAction = "buy"
	// TicketActionSoldOut は「Agotado」を表示する。
	TicketActionSoldOut TicketAction = "sold_out"
	// TicketActionFinished は「Finalizado」を表示する。
	TicketActionFinished TicketAction = "finished"
	// TicketActionComingSoon は「Próximamente」を表示する。
	TicketActionComingSoon TicketAction = "coming_soon"
)
