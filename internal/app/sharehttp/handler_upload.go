package sharehttp

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/share_lite/internal/models"
	"github.com/yourname/share_lite/pkg/httperrors"
	"github.com/yourname/share_lite/pkg/shareproto"
)

// Части приходят base64-кодированными, поэтому разумный предел тела заметно
// больше типичного размера части.
const maxChunkBody = 64 << 20

// uploadChunk принимает POST-запросы с очередной частью загрузки.
func (a *Server) uploadChunk(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareID")
	q := r.URL.Query()

	uploadID := q.Get(shareproto.ParamUploadID)
	name := q.Get(shareproto.ParamName)

	index, err := strconv.Atoi(q.Get(shareproto.ParamChunkIndex))
	if err != nil {
		httperrors.Write(w, models.ErrMalformedChunk)
		return
	}
	total, err := strconv.Atoi(q.Get(shareproto.ParamTotalChunks))
	if err != nil {
		httperrors.Write(w, models.ErrMalformedChunk)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxChunkBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := a.Files.SubmitChunk(r.Context(), shareID, uploadID, name, shareproto.ChunkPayload(string(body)), index, total)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if res.File != nil {
		_ = json.NewEncoder(w).Encode(res.File)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(models.UploadAck{
		Status:   "accepted",
		Received: res.Received,
		Total:    res.Total,
	})
}
