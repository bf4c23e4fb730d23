// internal/handlers/journal_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service"
	"go_5_prayer_journal/internal/webutil"
)

type JournalHandler struct {
	service service.JournalService
	paging  Pagination
}

func NewJournalHandler(s service.JournalService, paging Pagination) *JournalHandler {
	return &JournalHandler{service: s, paging: paging}
}

// PostJournalEntry はエントリーを配下の祈りのリクエストと一緒に作成します
func (h *JournalHandler) PostJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostJournalEntry")

	var req model.JournalEntryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	entry, err := h.service.CreateJournalEntry(r.Context(), &req)
	if err != nil {
		respondServiceError(w, logger, "Error creating journal entry in service", err)
		return
	}
	logger.Info("Journal entry created successfully", slog.Uint64("entry_id", uint64(entry.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, entry, logger)
}

func (h *JournalHandler) GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetJournalEntries")

	page, err := h.paging.parse(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	entries, err := h.service.ListJournalEntries(r.Context(), page)
	if err != nil {
		respondServiceError(w, logger, "Error listing journal entries in service", err)
		return
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

func (h *JournalHandler) GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetJournalEntry")

	entryID, err := urlID(r, "entry_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	entry, err := h.service.GetJournalEntry(r.Context(), entryID)
	if err != nil {
		respondServiceError(w, logger, "Error getting journal entry from service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

// PutJournalEntry はエントリーを送信内容で丸ごと置き換えます。
// prayerRequests は完全なリストとして扱われ、含まれない既存のリクエストは削除されます。
func (h *JournalHandler) PutJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutJournalEntry")

	entryID, err := urlID(r, "entry_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Uint64("entry_id", uint64(entryID)))

	var req model.JournalEntryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	entry, err := h.service.UpdateJournalEntry(r.Context(), entryID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error updating journal entry in service", err)
		return
	}
	logger.Info("Journal entry updated successfully", slog.Int("prayer_requests", len(entry.PrayerRequests)))
	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}

func (h *JournalHandler) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteJournalEntry")

	entryID, err := urlID(r, "entry_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteJournalEntry(r.Context(), entryID); err != nil {
		respondServiceError(w, logger, "Error deleting journal entry in service", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
