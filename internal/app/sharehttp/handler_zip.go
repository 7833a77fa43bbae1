package sharehttp

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/share_lite/pkg/httperrors"
)

// downloadZip стримит zip-архив всех файлов шары. Заголовки выставляются по
// первому байту архива: ошибка до начала потока ещё может стать честным
// HTTP-статусом, после первых байт её можно только залогировать.
func (a *Server) downloadZip(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")

	zr := &zipResponse{w: w, shareID: shareID}
	if err := a.Files.StreamZip(r.Context(), shareID, zr); err != nil {
		if !zr.started {
			httperrors.Write(w, err)
			return
		}
		log.Printf("zip stream aborted for share %s: %v", shareID, err)
	}
}

// zipResponse откладывает заголовки ответа до первой записи тела архива.
type zipResponse struct {
	w       http.ResponseWriter
	shareID string
	started bool
}

func (z *zipResponse) Write(p []byte) (int, error) {
	if !z.started {
		z.started = true
		z.w.Header().Set("Content-Type", "application/zip")
		z.w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, z.shareID+".zip"))
	}

	return z.w.Write(p)
}
