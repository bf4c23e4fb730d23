package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_prayer_journal/internal/model"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ErrNotFound", model.ErrNotFound, http.StatusNotFound},
		{"ラップされたErrNotFound", fmt.Errorf("wrap: %w", model.ErrNotFound), http.StatusNotFound},
		{"AppError(ErrInvalidInput)", model.NewAppError("X", "x", "", model.ErrInvalidInput), http.StatusBadRequest},
		{"ErrConflict", model.ErrConflict, http.StatusConflict},
		{"ErrInternalServer", model.ErrInternalServer, http.StatusInternalServerError},
		{"未知のエラー", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("AppErrorは詳細をそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, model.NewAppError("JOURNAL_ENTRY_NOT_FOUND", "見つかりません", "", model.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "JOURNAL_ENTRY_NOT_FOUND", resp.Error.Code)
	})

	t.Run("予期せぬエラーは汎用メッセージ", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, discardLogger, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

func TestValidateStruct(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		req := model.JournalEntryRequest{Content: "今日の祈り"}
		assert.NoError(t, ValidateStruct(req))
	})

	t.Run("異常系: 必須項目の欠落は日本語メッセージ", func(t *testing.T) {
		err := ValidateStruct(model.TagRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Equal(t, "name", appErr.Field)
		assert.Equal(t, "名前は必須項目です。", appErr.Message)
	})

	t.Run("異常系: ネストした祈りのリクエストのフィールドパス", func(t *testing.T) {
		req := model.JournalEntryRequest{
			Content: "本文",
			PrayerRequests: []model.PrayerRequestInput{
				{PrayerRequestRequest: model.PrayerRequestRequest{Title: "ok"}},
				{PrayerRequestRequest: model.PrayerRequestRequest{Title: ""}},
			},
		}
		err := ValidateStruct(req)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, strings.HasPrefix(appErr.Field, "prayerRequests[1]"), appErr.Field)
		assert.True(t, strings.HasSuffix(appErr.Field, "title"), appErr.Field)
		assert.Equal(t, "タイトルは必須項目です。", appErr.Message)
	})

	t.Run("異常系: 最大文字数", func(t *testing.T) {
		err := ValidateStruct(model.TagRequest{Name: strings.Repeat("a", 101)})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "名前は100文字以下で入力してください。", appErr.Message)
	})
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    model.Page
		wantErr bool
	}{
		{"デフォルト", "", model.Page{Skip: 0, Limit: 100}, false},
		{"指定あり", "?skip=20&limit=10", model.Page{Skip: 20, Limit: 10}, false},
		{"上限で丸める", "?limit=10000", model.Page{Skip: 0, Limit: 500}, false},
		{"負のskip", "?skip=-1", model.Page{}, true},
		{"数値以外のlimit", "?limit=abc", model.Page{}, true},
		{"limit=0", "?limit=0", model.Page{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/tags"+tt.query, nil)
			got, err := ParsePage(r, 100, 500)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalBool(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/prayer-requests?forMe=true", nil)
	v, err := ParseOptionalBool(r, "forMe")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	v, err = ParseOptionalBool(httptest.NewRequest(http.MethodGet, "/prayer-requests", nil), "forMe")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalBool(httptest.NewRequest(http.MethodGet, "/prayer-requests?forMe=maybe", nil), "forMe")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestParseIDParam(t *testing.T) {
	id, err := ParseIDParam("42", "entry_id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := ParseIDParam(raw, "entry_id")
		assert.ErrorIs(t, err, model.ErrInvalidInput, raw)
	}
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("未知のフィールドは無視", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"name":"family","id":3,"createdAt":"x"}`))
		var req model.TagRequest
		require.NoError(t, DecodeJSONBody(httptest.NewRecorder(), r, &req))
		assert.Equal(t, "family", req.Name)
	})

	t.Run("壊れたJSON", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"name":`))
		var req model.TagRequest
		assert.ErrorIs(t, DecodeJSONBody(httptest.NewRecorder(), r, &req), model.ErrInvalidInput)
	})

	t.Run("空のボディ", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(``))
		var req model.TagRequest
		err := DecodeJSONBody(httptest.NewRecorder(), r, &req)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "EMPTY_REQUEST_BODY", appErr.Code)
	})
}
