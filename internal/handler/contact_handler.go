package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/hitoshi/sonora/internal/model"
)

// maxContactBodyBytes はお問い合わせリクエストボディの上限。
const maxContactBodyBytes = 64 << 10

// contactSuccessMessage は送信成功時のメッセージ。
const contactSuccessMessage = "Email enviado exitosamente."

// ContactServiceInterface はお問い合わせハンドラーが必要とするサービスインターフェース。
// contact.Serviceが実装する。
type ContactServiceInterface interface {
	// Submit は入力検証・本文生成・配信を行い、結果種別を返す。
	Submit(ctx context.Context, sub model.ContactSubmission) (model.DispatchResult, error)
}

// ContactHandler はお問い合わせフォームのHTTPハンドラー。
type ContactHandler struct {
	service ContactServiceInterface
}

// NewContactHandler はContactHandlerを生成する。
func NewContactHandler(service ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// contactRequest はお問い合わせリクエストのボディ（JSONの場合）。
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// contactResponseData は送信成功時のdata部。
type contactResponseData struct {
	ID string `json:"id"`
}

// contactResponse は送信成功時のレスポンス。
type contactResponse struct {
	Message string              `json:"message"`
	Data    contactResponseData `json:"data"`
}

// Submit はお問い合わせを送信する。
// POST /api/contact
// ボディはJSONまたはフォーム（urlencoded / multipart）を受け付ける。
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	sub, apiErr, status := parseContactSubmission(r)
	if apiErr != nil {
		writeAPIErrorResponse(w, status, apiErr)
		return
	}

	result, err := h.service.Submit(r.Context(), sub)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	switch result.Outcome {
	case model.DispatchSent:
		writeJSON(w, http.StatusOK, contactResponse{
			Message: contactSuccessMessage,
			Data:    contactResponseData{ID: result.Detail},
		})
	case model.DispatchValidationFailed:
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewMissingFieldsError(result.MissingFields))
	case model.DispatchDeliveryFailed:
		// 配信サービスの詳細はサービス層でログ済み。利用者には一般的なメッセージのみ返す
		writeAPIErrorResponse(w, http.StatusBadGateway, model.NewDeliveryFailedError())
	default:
		slog.Error("unknown dispatch outcome", slog.String("outcome", string(result.Outcome)))
		writeAPIErrorResponse(w, http.StatusInternalServerError, model.NewInternalError())
	}
}

// parseContactSubmission はContent-Typeに応じてリクエストボディを解析する。
// 失敗した場合はAPIErrorとHTTPステータスを返す。
func parseContactSubmission(r *http.Request) (model.ContactSubmission, *model.APIError, int) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return model.ContactSubmission{}, model.NewInvalidRequestError("falta el tipo de contenido"), http.StatusUnsupportedMediaType
	}

	switch mediaType {
	case "application/json":
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return bodyError(err)
		}
		return model.ContactSubmission{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}, nil, 0

	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxContactBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return bodyError(err)
		}
		return model.ContactSubmission{
			Name:    r.PostFormValue("name"),
			Email:   r.PostFormValue("email"),
			Subject: r.PostFormValue("subject"),
			Message: r.PostFormValue("message"),
		}, nil, 0

	default:
		return model.ContactSubmission{}, model.NewInvalidRequestError("tipo de contenido no soportado"), http.StatusUnsupportedMediaType
	}
}

// bodyError はボディ読み取りエラーをAPIErrorに変換する。
func bodyError(err error) (model.ContactSubmission, *model.APIError, int) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return model.ContactSubmission{}, model.NewInvalidRequestError("el mensaje es demasiado grande"), http.StatusRequestEntityTooLarge
	}
	return model.ContactSubmission{}, model.NewInvalidRequestError("no se pudo leer el formulario"), http.StatusBadRequest
}
