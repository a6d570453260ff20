// Package model はドメインモデルを定義する。
package model

import (
	"fmt"
	"strings"
)

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string   // エラーコード
	Message  string   // エラーメッセージ
	Category string   // カテゴリ: validation, content, contact, system
	Action   string   // ユーザー向け対処方法
	Fields   []string // 入力エラーの対象フィールド（該当する場合のみ）
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingFields  = "MISSING_FIELDS"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodePostNotFound   = "POST_NOT_FOUND"
	ErrCodeAlbumNotFound  = "ALBUM_NOT_FOUND"
	ErrCodeDeliveryFailed = "DELIVERY_FAILED"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// NewMissingFieldsError は必須項目未入力エラーを生成する。
func NewMissingFieldsError(fields []string) *APIError {
	return &APIError{
		Code:     ErrCodeMissingFields,
		Message:  fmt.Sprintf("Faltan campos requeridos: %s.", strings.Join(fields, ", ")),
		Category: "validation",
		Action:   "Completa todos los campos del formulario e inténtalo nuevamente.",
		Fields:   fields,
	}
}

// NewInvalidRequestError はリクエスト形式エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("Solicitud inválida: %s", reason),
		Category: "validation",
		Action:   "Revisa los datos enviados.",
	}
}

// NewPostNotFoundError はブログ記事未検出エラーを生成する。
func NewPostNotFoundError(slug string) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("No se encontró la publicación: %s", slug),
		Category: "content",
		Action:   "Vuelve al blog y elige otra publicación.",
	}
}

// NewAlbumNotFoundError はアルバム未検出エラーを生成する。
func NewAlbumNotFoundError(id int) *APIError {
	return &APIError{
		Code:     ErrCodeAlbumNotFound,
		Message:  fmt.Sprintf("No se encontró el álbum: %d", id),
		Category: "content",
		Action:   "Vuelve a la discografía y elige otro álbum.",
	}
}

// NewDeliveryFailedError はメール配信失敗エラーを生成する。
// 配信サービスの詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func NewDeliveryFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeDeliveryFailed,
		Message:  "No pudimos enviar tu mensaje en este momento.",
		Category: "contact",
		Action:   "Inténtalo nuevamente en unos minutos.",
	}
}

// NewRateLimitedError はレート制限超過エラーを生成する。
func NewRateLimitedError() *APIError {
	return &APIError{
		Code:     ErrCodeRateLimited,
		Message:  "Demasiadas solicitudes.",
		Category: "system",
		Action:   "Espera un momento antes de volver a intentarlo.",
	}
}

// NewInternalError は内部エラーを生成する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  "Error interno del servidor.",
		Category: "system",
		Action:   "Inténtalo nuevamente más tarde.",
	}
}
