// internal/handlers/prayer_request_update_handler.go
package handlers

import (
	"net/http"

	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service"
	"go_5_prayer_journal/internal/webutil"
)

// PrayerRequestUpdateHandler は /prayer-requests/{request_id}/updates 配下を扱います
type PrayerRequestUpdateHandler struct {
	service service.PrayerRequestUpdateService
}

func NewPrayerRequestUpdateHandler(s service.PrayerRequestUpdateService) *PrayerRequestUpdateHandler {
	return &PrayerRequestUpdateHandler{service: s}
}

func (h *PrayerRequestUpdateHandler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostUpdate")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.PrayerRequestUpdateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	update, err := h.service.CreatePrayerRequestUpdate(r.Context(), requestID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error creating prayer request update in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, update, logger)
}

func (h *PrayerRequestUpdateHandler) GetUpdates(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetUpdates")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	updates, err := h.service.ListPrayerRequestUpdates(r.Context(), requestID)
	if err != nil {
		respondServiceError(w, logger, "Error listing prayer request updates in service", err)
		return
	}
	if updates == nil {
		updates = []model.PrayerRequestUpdate{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, updates, logger)
}

// updateIDs は親リクエストIDと経過記録IDをURLから取り出します
func updateIDs(r *http.Request) (requestID, updateID uint, err error) {
	if requestID, err = urlID(r, "request_id"); err != nil {
		return 0, 0, err
	}
	if updateID, err = urlID(r, "update_id"); err != nil {
		return 0, 0, err
	}
	return requestID, updateID, nil
}

func (h *PrayerRequestUpdateHandler) GetUpdate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetUpdate")

	requestID, updateID, err := updateIDs(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	update, err := h.service.GetPrayerRequestUpdate(r.Context(), requestID, updateID)
	if err != nil {
		respondServiceError(w, logger, "Error getting prayer request update from service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, update, logger)
}

func (h *PrayerRequestUpdateHandler) PutUpdate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutUpdate")

	requestID, updateID, err := updateIDs(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.PrayerRequestUpdateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	update, err := h.service.UpdatePrayerRequestUpdate(r.Context(), requestID, updateID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error updating prayer request update in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, update, logger)
}

func (h *PrayerRequestUpdateHandler) DeleteUpdate(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteUpdate")

	requestID, updateID, err := updateIDs(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeletePrayerRequestUpdate(r.Context(), requestID, updateID); err != nil {
		respondServiceError(w, logger, "Error deleting prayer request update in service", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
