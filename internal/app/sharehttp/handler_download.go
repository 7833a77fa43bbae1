package sharehttp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/share_lite/internal/usecase/filesvc"
	"github.com/yourname/share_lite/pkg/httperrors"
	"github.com/yourname/share_lite/pkg/shareproto"
)

// downloadFile отдаёт файл целиком либо точное байтовое окно по заголовку Range.
func (a *Server) downloadFile(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")
	fileID := chi.URLParam(r, "fileID")

	// download=true по умолчанию: браузеру предлагается сохранить файл.
	wantsDownload := q(r, shareproto.ParamDownload, "true") == "true"

	d, err := a.Files.OpenDownload(r.Context(), shareID, fileID, r.Header.Get("Range"))
	if err != nil {
		var re *filesvc.RangeError
		if errors.As(err, &re) {
			w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", re.Size))
			http.Error(w, err.Error(), http.StatusRequestedRangeNotSatisfiable)
			return
		}
		httperrors.Write(w, err)
		return
	}
	defer d.Body.Close()

	w.Header().Set("Content-Type", d.File.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(d.Length(), 10))
	if wantsDownload {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, d.File.Name))
	}

	if d.Partial {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", d.Start, d.End, d.File.Size))
		w.Header().Set("Accept-Ranges", "bytes")
		w.WriteHeader(http.StatusPartialContent)
	}

	if _, err := io.Copy(w, d.Body); err != nil {
		// Заголовки уже отправлены: ответ обрывается, повтор невозможен.
		log.Printf("download stream aborted for %s/%s: %v", shareID, fileID, err)
	}
}

func q(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}

	return def
}
