package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/library/application"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/library/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/utils"
)

const (
	modeFolders = "folders"
	modeFiles   = "files"

	defaultPage = 1
)

type LibraryHandler struct {
	service         application.LibraryService
	defaultPageSize int
}

func NewLibraryHandler(service application.LibraryService, defaultPageSize int) *LibraryHandler {
	if defaultPageSize < 1 {
		defaultPageSize = 12
	}
	return &LibraryHandler{service: service, defaultPageSize: defaultPageSize}
}

// List handles GET /api/local-files?mode=folders|files&folderName=&page=&limit=
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := queryInt(q.Get("page"), defaultPage)
	limit := queryInt(q.Get("limit"), h.defaultPageSize)

	switch q.Get("mode") {
	case modeFolders:
		envelope, err := h.service.ListFolders(r.Context(), page, limit)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, envelope)

	case modeFiles:
		folderName := q.Get("folderName")
		if folderName == "" {
			utils.WriteError(w, http.StatusBadRequest, "folderName is required for mode=files", nil)
			return
		}

		envelope, err := h.service.ListFiles(r.Context(), folderName, page, limit)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, envelope)

	default:
		utils.WriteError(w, http.StatusBadRequest, "mode must be 'folders' or 'files'", nil)
	}
}

func (h *LibraryHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPage), errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrFolderNameRequired):
		utils.WriteError(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, domain.ErrPathOutsideRoot):
		utils.WriteError(w, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, domain.ErrFolderNotFound), errors.Is(err, domain.ErrRootNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found", err)
	default:
		utils.WriteError(w, http.StatusInternalServerError, "failed to list local files", err)
	}
}

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
