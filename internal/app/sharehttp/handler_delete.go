package sharehttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/share_lite/pkg/httperrors"
)

// removeFile удаляет файл шары вместе с его блобом.
func (a *Server) removeFile(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")
	fileID := chi.URLParam(r, "fileID")

	if err := a.Files.Remove(r.Context(), shareID, fileID); err != nil {
		httperrors.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
