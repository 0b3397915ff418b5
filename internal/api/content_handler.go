package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/api/shared"
	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/service"
)

// historyListLimit caps how many records a history listing returns.
const historyListLimit = 50

// ContentHandler handles content generation and history HTTP requests.
type ContentHandler struct {
	contentService service.ContentService
	validator      *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validator:      validator.New(),
	}
}

// decodeGenerateRequest parses and validates the shared generation request
// body, writing an error response on failure.
func (h *ContentHandler) decodeGenerateRequest(
	w http.ResponseWriter,
	r *http.Request,
) (uuid.UUID, domain.GenerationRequest, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, domain.GenerationRequest{}, false
	}

	var req GenerateContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return uuid.Nil, domain.GenerationRequest{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return uuid.Nil, domain.GenerationRequest{}, false
	}

	return userID, req.ToDomain(), true
}

// GenerateTextPost handles POST /api/content/text requests.
func (h *ContentHandler) GenerateTextPost(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.contentService.GenerateTextPost(r.Context(), userID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GenerateImagePost handles POST /api/content/image requests.
func (h *ContentHandler) GenerateImagePost(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.contentService.GenerateImagePost(r.Context(), userID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GenerateVideoScript handles POST /api/content/video requests.
func (h *ContentHandler) GenerateVideoScript(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.contentService.GenerateVideoScript(r.Context(), userID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GenerateUGCAd handles POST /api/content/ugc requests.
func (h *ContentHandler) GenerateUGCAd(w http.ResponseWriter, r *http.Request) {
	userID, req, ok := h.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.contentService.GenerateUGCAd(r.Context(), userID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// SaveToHistory handles POST /api/content/history requests.
func (h *ContentHandler) SaveToHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SaveContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := domain.NewContentRecord(
		userID,
		domain.ContentKind(req.ContentType),
		domain.Platform(req.Platform),
		req.Topic,
		domain.Tone(req.Tone),
		domain.Goal(req.Goal),
		req.Caption,
		req.Hashtags,
		req.CTA,
	)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.contentService.SaveContent(r.Context(), record); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SaveContentResponse{
		Success: true,
		ID:      record.ID.String(),
		Message: "Content saved to history successfully",
	})
}

// GetHistory handles GET /api/content/history requests.
func (h *ContentHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	records, err := h.contentService.History(r.Context(), userID, historyListLimit)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	items := make([]HistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, historyItemFromRecord(record))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{Items: items})
}
