// internal/handlers/tag_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/service"
	"go_5_prayer_journal/internal/webutil"
)

type TagHandler struct {
	service service.TagService
	paging  Pagination
}

func NewTagHandler(s service.TagService, paging Pagination) *TagHandler {
	return &TagHandler{service: s, paging: paging}
}

// PostTag はタグを作成します
func (h *TagHandler) PostTag(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostTag")

	var req model.TagRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	tag, err := h.service.CreateTag(r.Context(), &req)
	if err != nil {
		respondServiceError(w, logger, "Error creating tag in service", err)
		return
	}
	logger.Info("Tag created successfully", slog.Uint64("tag_id", uint64(tag.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, tag, logger)
}

// GetTags はタグの一覧を名前順で返します
func (h *TagHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetTags")

	page, err := h.paging.parse(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	tags, err := h.service.ListTags(r.Context(), page)
	if err != nil {
		respondServiceError(w, logger, "Error listing tags in service", err)
		return
	}
	if tags == nil {
		tags = []model.Tag{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tags, logger)
}

func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetTag")

	tagID, err := urlID(r, "tag_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	tag, err := h.service.GetTag(r.Context(), tagID)
	if err != nil {
		respondServiceError(w, logger, "Error getting tag from service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tag, logger)
}

// PutTag はタグ名を変更します
func (h *TagHandler) PutTag(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PutTag")

	tagID, err := urlID(r, "tag_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	var req model.TagRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	tag, err := h.service.UpdateTag(r.Context(), tagID, &req)
	if err != nil {
		respondServiceError(w, logger, "Error updating tag in service", err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, tag, logger)
}

func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteTag")

	tagID, err := urlID(r, "tag_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteTag(r.Context(), tagID); err != nil {
		respondServiceError(w, logger, "Error deleting tag in service", err)
		return
	}
	logger.Info("Tag deleted successfully", slog.Uint64("tag_id", uint64(tagID)))
	w.WriteHeader(http.StatusNoContent)
}
