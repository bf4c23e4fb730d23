// internal/handlers/common.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// Pagination は一覧APIの limit のデフォルト値と上限です
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Pagination) parse(r *http.Request) (model.Page, error) {
	return webutil.ParsePage(r, p.DefaultLimit, p.MaxLimit)
}

func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}

// urlID は chi のURLパラメータをIDとして解釈します
func urlID(r *http.Request, name string) (uint, error) {
	return webutil.ParseIDParam(chi.URLParam(r, name), name)
}

// decodeAndValidate はボディをデコードしてバリデーションします。失敗時はレスポンスを書き込んで false を返します。
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// respondServiceError はサービス層のエラーをログに残してレスポンスします。
// 404/400/409 はクライアント起因なので Info に留める。
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrConflict) {
		logger.Info(msg, slog.Any("error", err))
	} else {
		logger.Error(msg, slog.Any("error", err))
	}
	webutil.HandleError(w, logger, err)
}
