package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/application"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/utils"
)

const defaultPage = 1

type TrackHandler struct {
	service         application.TrackService
	fileService     FileService
	defaultPageSize int
}

func NewTrackHandler(service application.TrackService, fileService FileService, defaultPageSize int) *TrackHandler {
	if defaultPageSize < 1 {
		defaultPageSize = 12
	}
	return &TrackHandler{
		service:         service,
		fileService:     fileService,
		defaultPageSize: defaultPageSize,
	}
}

// List handles GET /api/tracks?page=&limit=
func (h *TrackHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt(q.Get("page"), defaultPage)
	limit := queryInt(q.Get("limit"), h.defaultPageSize)

	envelope, err := h.service.ListTracks(r.Context(), page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPage) || errors.Is(err, domain.ErrInvalidLimit) {
			utils.WriteError(w, http.StatusBadRequest, "invalid paging parameters", err)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to list tracks", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, ToTrackListResponse(envelope))
}

// Create handles POST /api/tracks (multipart: title, file)
func (h *TrackHandler) Create(w http.ResponseWriter, r *http.Request) {
	// Max 50MB
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		utils.WriteError(w, http.StatusBadRequest, "validation failed", domain.ErrTitleRequired)
		return
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		utils.WriteError(w, http.StatusBadRequest, "validation failed", domain.ErrFileRequired)
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid file upload", err)
		return
	}
	defer file.Close()

	url, key, err := h.fileService.Upload(r.Context(), file, header, "tracks")
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to store file", err)
		return
	}

	track, err := h.service.CreateTrack(r.Context(), title, url, key)
	if err != nil {
		// The record never landed, so the uploaded object is orphaned.
		_ = h.fileService.Delete(context.Background(), key)

		if errors.Is(err, domain.ErrTitleRequired) || errors.Is(err, domain.ErrFileRequired) {
			utils.WriteError(w, http.StatusBadRequest, "validation failed", err)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to create track", err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, ToTrackResponse(track))
}

// queryInt parses a query parameter, falling back to def when the parameter
// is missing or not a number. Out-of-range values are passed through so the
// service can reject them.
func queryInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
