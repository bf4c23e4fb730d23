// internal/handlers/person_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service"
	"go_5_prayer_journal/internal/webutil"
)

type PersonHandler struct {
	service service.PersonService
	paging  Pagination
}

func NewPersonHandler(s service.PersonService, paging Pagination) *PersonHandler {
	return &PersonHandler{service: s, paging: paging}
}

func (h *PersonHandler) PostPerson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostPerson")

	var req model.PersonRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	person, err := h.service.CreatePerson(r.Context(), &req)
	if err != nil {
		respondServiceError(w, logger, "Error creating person in service", err)
		return
	}
	logger.Info("Person created successfully", slog.Uint64("person_id", uint64(person.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, person, logger)
}

func (h *PersonHandler) GetPeople(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetPeople")

	page, err := h.paging.parse(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	people, err := h.service.ListPeople(r.Context(), page)
	if err != nil {
		respondServiceError(w, logger, "Error listing people in service", err)
		return
	}
	if people == nil {
		people = []model.Person{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, people, logger)
}

func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetPerson")

	personID, err := urlID(r, "person_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	person, err := h.service.GetPerson(r.Context(), personID)
	if err != nil {
		respondServiceError(w, logger, "Error getting person from service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, person, logger)
}

func (h *PersonHandler) PutPerson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutPerson")

	personID, err := urlID(r, "person_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.PersonRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	person, err := h.service.UpdatePerson(r.Context(), personID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error updating person in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, person, logger)
}

// DeletePerson は担当者を削除します。割り当てられていたリクエストは未割り当てになります。
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeletePerson")

	personID, err := urlID(r, "person_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeletePerson(r.Context(), personID); err != nil {
		respondServiceError(w, logger, "Error deleting person in service", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
