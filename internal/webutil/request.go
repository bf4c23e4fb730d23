package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go_5_prayer_journal/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// フロントエンドは createdAt などの読み取り専用フィールドも送ってくるため、未知のフィールドは無視する。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("EMPTY_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}

// ParsePage は skip / limit クエリパラメータを解釈します。
// limit 未指定時は defaultLimit、maxLimit を超える値は maxLimit に丸める。
func ParsePage(r *http.Request, defaultLimit, maxLimit int) (model.Page, error) {
	page := model.Page{Skip: 0, Limit: defaultLimit}

	if s := r.URL.Query().Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return page, model.NewAppError("INVALID_QUERY_PARAM", "skipは0以上の整数で指定してください。", "skip", model.ErrInvalidInput)
		}
		page.Skip = v
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return page, model.NewAppError("INVALID_QUERY_PARAM", "limitは1以上の整数で指定してください。", "limit", model.ErrInvalidInput)
		}
		page.Limit = v
	}
	if page.Limit > maxLimit {
		page.Limit = maxLimit
	}
	return page, nil
}

// ParseOptionalBool は真偽値のクエリパラメータを解釈します。未指定なら nil
func ParseOptionalBool(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", name+"はtrueまたはfalseで指定してください。", name, model.ErrInvalidInput)
	}
	return &v, nil
}

// ParseIDParam はURLパスのIDを解釈します
func ParseIDParam(raw, name string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
	}
	return uint(v), nil
}
