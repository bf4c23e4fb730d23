// helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/require"

	"go_5_prayer_journal/internal/handlers"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service/mocks"
)

// fakePinger は HealthHandler 用のDBスタブです
type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

// testEnv はモックサービスを差し込んだルーター一式です
type testEnv struct {
	router   http.Handler
	pinger   *fakePinger
	tags     *mocks.MockTagService
	people   *mocks.MockPersonService
	journal  *mocks.MockJournalService
	requests *mocks.MockPrayerRequestService
	updates  *mocks.MockPrayerRequestUpdateService
}

var testPaging = handlers.Pagination{DefaultLimit: 100, MaxLimit: 500}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		pinger:   &fakePinger{},
		tags:     mocks.NewMockTagService(t),
		people:   mocks.NewMockPersonService(t),
		journal:  mocks.NewMockJournalService(t),
		requests: mocks.NewMockPrayerRequestService(t),
		updates:  mocks.NewMockPrayerRequestUpdateService(t),
	}
	env.router = handlers.NewRouter(handlers.Handlers{
		Health:         handlers.NewHealthHandler(env.pinger, "test"),
		Tags:           handlers.NewTagHandler(env.tags, testPaging),
		People:         handlers.NewPersonHandler(env.people, testPaging),
		Journal:        handlers.NewJournalHandler(env.journal, testPaging),
		PrayerRequests: handlers.NewPrayerRequestHandler(env.requests, testPaging),
		Updates:        handlers.NewPrayerRequestUpdateHandler(env.updates),
	}, handlers.RouterOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORS: cors.Options{
			AllowedOrigins: []string{"http://localhost:4200"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		},
	})
	return env
}

// do はリクエストを送信してレスポンスレコーダーを返します。body が string ならそのまま送ります。
func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// errorDetail はエラーレスポンスのボディを取り出します
func errorDetail(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func uintPtr(v uint) *uint {
	return &v
}
