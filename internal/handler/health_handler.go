package handler

import "net/http"

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler はコンテナのヘルスチェック用エンドポイント。
// コンテンツは起動時に読み込み済みのため、プロセスが応答できれば正常とみなす。
// GET /health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
