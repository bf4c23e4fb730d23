// internal/handlers/prayer_request_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service"
	"go_5_prayer_journal/internal/webutil"
)

type PrayerRequestHandler struct {
	service service.PrayerRequestService
	paging  Pagination
}

func NewPrayerRequestHandler(s service.PrayerRequestService, paging Pagination) *PrayerRequestHandler {
	return &PrayerRequestHandler{service: s, paging: paging}
}

func (h *PrayerRequestHandler) PostPrayerRequest(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostPrayerRequest")

	var req model.PrayerRequestRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	pr, err := h.service.CreatePrayerRequest(r.Context(), &req)
	if err != nil {
		respondServiceError(w, logger, "Error creating prayer request in service", err)
		return
	}
	logger.Info("Prayer request created successfully", slog.Uint64("request_id", uint64(pr.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, pr, logger)
}

// GetPrayerRequests は一覧を返します。?forMe=true で自分のためのリクエストに絞り込めます。
func (h *PrayerRequestHandler) GetPrayerRequests(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetPrayerRequests")

	page, err := h.paging.parse(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	forMe, err := webutil.ParseOptionalBool(r, "forMe")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	requests, err := h.service.ListPrayerRequests(r.Context(), model.PrayerRequestFilter{IsForMe: forMe, Page: page})
	if err != nil {
		respondServiceError(w, logger, "Error listing prayer requests in service", err)
		return
	}
	if requests == nil {
		requests = []model.PrayerRequest{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, requests, logger)
}

func (h *PrayerRequestHandler) GetPrayerRequest(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetPrayerRequest")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	pr, err := h.service.GetPrayerRequest(r.Context(), requestID)
	if err != nil {
		respondServiceError(w, logger, "Error getting prayer request from service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, pr, logger)
}

func (h *PrayerRequestHandler) PutPrayerRequest(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutPrayerRequest")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.PrayerRequestRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	pr, err := h.service.UpdatePrayerRequest(r.Context(), requestID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error updating prayer request in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, pr, logger)
}

// PutAssignee は担当者を設定・解除します ({"personId": null} で解除)
func (h *PrayerRequestHandler) PutAssignee(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutAssignee")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.AssigneeRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	pr, err := h.service.AssignPerson(r.Context(), requestID, req.PersonID)
	if err != nil {
		respondServiceError(w, logger, "Error assigning person in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, pr, logger)
}

func (h *PrayerRequestHandler) DeletePrayerRequest(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeletePrayerRequest")

	requestID, err := urlID(r, "request_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeletePrayerRequest(r.Context(), requestID); err != nil {
		respondServiceError(w, logger, "Error deleting prayer request in service", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
