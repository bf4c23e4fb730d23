// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Internal error", slog.Any("error", err))
		}
	} else {
		// 予期せぬエラーはログにだけ詳細を残す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: defaultErrorDetail(statusCode)}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func defaultErrorDetail(statusCode int) model.ErrorDetail {
	switch statusCode {
	case http.StatusNotFound:
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "リソースが見つかりません。"}
	case http.StatusBadRequest:
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "入力内容が正しくありません。"}
	case http.StatusConflict:
		return model.ErrorDetail{Code: "CONFLICT", Message: "リソースが重複しています。"}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "サーバー内部でエラーが発生しました。"}
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
