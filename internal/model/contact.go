// Package model はドメインモデルを定義する。
package model

// ContactSubmission はお問い合わせフォームの送信内容を表す。
// 1リクエストの間だけ存在し、永続化しない。
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DispatchOutcome はお問い合わせ処理の結果種別。
type DispatchOutcome string

const (
	// DispatchSent はメール送信に成功した。
	DispatchSent DispatchOutcome = "sent"
	// DispatchValidationFailed は必須項目が欠けていたため送信しなかった。
	DispatchValidationFailed DispatchOutcome = "validation_failed"
	// DispatchDeliveryFailed はメール配信サービスがエラーを返した、またはタイムアウトした。
	DispatchDeliveryFailed DispatchOutcome = "delivery_failed"
)

// DispatchResult はお問い合わせ処理の結果。
// Sentの場合Detailは配信ID、DeliveryFailedの場合は配信サービスのエラー詳細。
type DispatchResult struct {
	Outcome       DispatchOutcome
	Detail        string
	MissingFields []string
}

// OutboundEmail はメール配信サービスに渡す1通分のメール。
type OutboundEmail struct {
	From    string
	To      string
	Subject string
	ReplyTo string
	HTML    string
	Text    string
}

// DeliveryReceipt はメール配信サービスの受付応答。
type DeliveryReceipt struct {
	ID string
}
