//go:build integration

// api_integration_test.go
package handlers_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"go_5_prayer_journal/internal/handlers"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"
	"go_5_prayer_journal/internal/service"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	integDB     *gorm.DB
	integSQLDB  *sql.DB
	integLogger *slog.Logger
)

func TestMain(m *testing.M) {
	integLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(integLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=prayer_journal",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	// devcontainer からは host.docker.internal 経由でつなぐ
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	dsn := fmt.Sprintf("postgres://user:secret@%s:%s/prayer_journal?sslmode=disable", host, resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		integDB, errRetry = repository.NewDB(repository.DriverPostgres, dsn, integLogger)
		return errRetry
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to database: %s", err)
	}

	if err := repository.AutoMigrate(integDB); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not migrate database: %s", err)
	}
	integSQLDB, _ = integDB.DB()

	code := m.Run()

	_ = integSQLDB.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func newIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()
	require.NoError(t, integDB.Exec(
		"TRUNCATE prayer_request_updates, prayer_request_tag, journal_tag, prayer_requests, journal_entries, people, tags RESTART IDENTITY CASCADE",
	).Error)

	tagRepo := repository.NewGormTagRepository()
	personRepo := repository.NewGormPersonRepository()
	entryRepo := repository.NewGormJournalEntryRepository()
	prRepo := repository.NewGormPrayerRequestRepository()
	updateRepo := repository.NewGormPrayerRequestUpdateRepository()

	return handlers.NewRouter(handlers.Handlers{
		Health:         handlers.NewHealthHandler(integSQLDB, "integration"),
		Tags:           handlers.NewTagHandler(service.NewTagService(integDB, tagRepo), testPaging),
		People:         handlers.NewPersonHandler(service.NewPersonService(integDB, personRepo, prRepo), testPaging),
		Journal:        handlers.NewJournalHandler(service.NewJournalService(integDB, entryRepo, prRepo, tagRepo, personRepo), testPaging),
		PrayerRequests: handlers.NewPrayerRequestHandler(service.NewPrayerRequestService(integDB, prRepo, tagRepo, personRepo), testPaging),
		Updates:        handlers.NewPrayerRequestUpdateHandler(service.NewPrayerRequestUpdateService(integDB, prRepo, updateRepo)),
	}, handlers.RouterOptions{Logger: integLogger, CORS: cors.Options{}})
}

func decodeInto[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", string(body))
	return v
}

func TestIntegration_JournalEntryReconcile(t *testing.T) {
	env := &testEnv{router: newIntegrationRouter(t)}

	rr := env.do(t, http.MethodPost, "/api/v1/tags", model.TagRequest{Name: "感謝"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	tag := decodeInto[model.Tag](t, rr.Body.Bytes())

	rr = env.do(t, http.MethodPost, "/api/v1/tags", model.TagRequest{Name: "感謝"})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/v1/people", model.PersonRequest{FirstName: "太郎", LastName: "山田"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	person := decodeInto[model.Person](t, rr.Body.Bytes())

	rr = env.do(t, http.MethodPost, "/api/v1/journal-entries", map[string]interface{}{
		"content":     "朝の祈り",
		"bibleVerses": []string{"Psalm 23:1"},
		"tags":        []uint{tag.ID, 999},
		"prayerRequests": []map[string]interface{}{
			{"title": "A"},
			{"title": "B", "assignedToId": person.ID},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeInto[model.JournalEntry](t, rr.Body.Bytes())
	require.Len(t, created.PrayerRequests, 2)
	require.Len(t, created.Tags, 1)
	idA, idB := created.PrayerRequests[0].ID, created.PrayerRequests[1].ID

	rr = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/prayer-requests/%d/updates", idB),
		model.PrayerRequestUpdateRequest{Title: "経過", Content: "順調"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// A を更新、B を削除、C を新規作成
	path := fmt.Sprintf("/api/v1/journal-entries/%d", created.ID)
	rr = env.do(t, http.MethodPut, path, map[string]interface{}{
		"content": "朝の祈り (改)",
		"prayerRequests": []map[string]interface{}{
			{"id": idA, "title": "A2", "checked": true, "tags": []uint{tag.ID}},
			{"title": "C"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decodeInto[model.JournalEntry](t, rr.Body.Bytes())

	require.Len(t, updated.PrayerRequests, 2)
	assert.Equal(t, idA, updated.PrayerRequests[0].ID)
	assert.Equal(t, "A2", updated.PrayerRequests[0].Title)
	assert.True(t, updated.PrayerRequests[0].Checked)
	require.Len(t, updated.PrayerRequests[0].Tags, 1)
	assert.Equal(t, "C", updated.PrayerRequests[1].Title)
	assert.Empty(t, updated.Tags)
	assert.Empty(t, updated.BibleVerses)

	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/prayer-requests/%d", idB), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var updateCount int64
	require.NoError(t, integDB.Model(&model.PrayerRequestUpdate{}).Where("prayer_request_id = ?", idB).Count(&updateCount).Error)
	assert.Zero(t, updateCount)

	// 担当者は削除されない
	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/people/%d", person.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// 同じ内容を再送しても変化しない
	rr = env.do(t, http.MethodPut, path, map[string]interface{}{
		"content": "朝の祈り (改)",
		"prayerRequests": []map[string]interface{}{
			{"id": idA, "title": "A2", "checked": true, "tags": []uint{tag.ID}},
			{"id": updated.PrayerRequests[1].ID, "title": "C"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	again := decodeInto[model.JournalEntry](t, rr.Body.Bytes())
	assert.Equal(t, []uint{idA, updated.PrayerRequests[1].ID}, []uint{again.PrayerRequests[0].ID, again.PrayerRequests[1].ID})

	rr = env.do(t, http.MethodPut, "/api/v1/journal-entries/424242", map[string]interface{}{"content": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "JOURNAL_ENTRY_NOT_FOUND", errorDetail(t, rr).Code)

	rr = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	var requestCount int64
	require.NoError(t, integDB.Model(&model.PrayerRequest{}).Count(&requestCount).Error)
	assert.Zero(t, requestCount)

	rr = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/tags/%d", tag.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestIntegration_Health(t *testing.T) {
	env := &testEnv{router: newIntegrationRouter(t)}

	rr := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
