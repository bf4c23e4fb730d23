// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"go_5_prayer_journal/internal/middleware"
)

// Handlers はルーターに登録するハンドラ一式です
type Handlers struct {
	Health         *HealthHandler
	Tags           *TagHandler
	People         *PersonHandler
	Journal        *JournalHandler
	PrayerRequests *PrayerRequestHandler
	Updates        *PrayerRequestUpdateHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	CORS           cors.Options
	RequestTimeout time.Duration
}

// NewRouter はミドルウェアとAPIルートを設定した chi ルーターを返します
func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(opts.Logger))
	r.Use(cors.New(opts.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Get("/health", h.Health.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tags", func(r chi.Router) {
			r.Post("/", h.Tags.PostTag)
			r.Get("/", h.Tags.GetTags)
			r.Get("/{tag_id}", h.Tags.GetTag)
			r.Put("/{tag_id}", h.Tags.PutTag)
			r.Delete("/{tag_id}", h.Tags.DeleteTag)
		})

		r.Route("/people", func(r chi.Router) {
			r.Post("/", h.People.PostPerson)
			r.Get("/", h.People.GetPeople)
			r.Get("/{person_id}", h.People.GetPerson)
			r.Put("/{person_id}", h.People.PutPerson)
			r.Delete("/{person_id}", h.People.DeletePerson)
		})

		r.Route("/journal-entries", func(r chi.Router) {
			r.Post("/", h.Journal.PostJournalEntry)
			r.Get("/", h.Journal.GetJournalEntries)
			r.Get("/{entry_id}", h.Journal.GetJournalEntry)
			r.Put("/{entry_id}", h.Journal.PutJournalEntry)
			r.Delete("/{entry_id}", h.Journal.DeleteJournalEntry)
		})

		r.Route("/prayer-requests", func(r chi.Router) {
			r.Post("/", h.PrayerRequests.PostPrayerRequest)
			r.Get("/", h.PrayerRequests.GetPrayerRequests)

			r.Route("/{request_id}", func(r chi.Router) {
				r.Get("/", h.PrayerRequests.GetPrayerRequest)
				r.Put("/", h.PrayerRequests.PutPrayerRequest)
				r.Delete("/", h.PrayerRequests.DeletePrayerRequest)
				r.Put("/assignee", h.PrayerRequests.PutAssignee)

				r.Route("/updates", func(r chi.Router) {
					r.Post("/", h.Updates.PostUpdate)
					r.Get("/", h.Updates.GetUpdates)
					r.Get("/{update_id}", h.Updates.GetUpdate)
					r.Put("/{update_id}", h.Updates.PutUpdate)
					r.Delete("/{update_id}", h.Updates.DeleteUpdate)
				})
			})
		})
	})

	return r
}
