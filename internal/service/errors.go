// internal/service/errors.go
package service

import (
	"errors"
	"log/slog"

	"go_5_prayer_journal/internal/model"
)

// クライアントに返すエラー
var (
	errTagNotFound           = model.NewAppError("TAG_NOT_FOUND", "タグが見つかりません。", "", model.ErrNotFound)
	errTagNameConflict       = model.NewAppError("TAG_NAME_CONFLICT", "同じ名前のタグが既に存在します。", "name", model.ErrConflict)
	errPersonNotFound        = model.NewAppError("PERSON_NOT_FOUND", "担当者が見つかりません。", "", model.ErrNotFound)
	errJournalEntryNotFound  = model.NewAppError("JOURNAL_ENTRY_NOT_FOUND", "ジャーナルが見つかりません。", "", model.ErrNotFound)
	errPrayerRequestNotFound = model.NewAppError("PRAYER_REQUEST_NOT_FOUND", "祈りのリクエストが見つかりません。", "", model.ErrNotFound)
	errUpdateNotFound        = model.NewAppError("PRAYER_REQUEST_UPDATE_NOT_FOUND", "経過記録が見つかりません。", "", model.ErrNotFound)
)

// newAssigneeNotFoundError は存在しない担当者IDが指定された場合のエラー (400)
func newAssigneeNotFoundError(field string) *model.AppError {
	return model.NewAppError("ASSIGNEE_NOT_FOUND", "指定された担当者が見つかりません。", field, model.ErrInvalidInput)
}

// replaceNotFound はリポジトリの ErrNotFound をリソース固有のエラーに置き換えます
func replaceNotFound(err error, notFound *model.AppError) error {
	var appErr *model.AppError
	if errors.Is(err, model.ErrNotFound) && !errors.As(err, &appErr) {
		return notFound
	}
	return err
}

// translateError は想定内のエラーはそのまま返し、それ以外はログに残して500用のエラーに変換します。
// トランザクション内で返ったエラーはこの時点でロールバック済み。
func translateError(logger *slog.Logger, msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrConflict) {
		return err
	}
	logger.Error(msg, slog.Any("error", err))
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", errors.Join(model.ErrInternalServer, err))
}
