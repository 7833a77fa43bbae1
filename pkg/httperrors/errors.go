package httperrors

import (
	"errors"
	"net/http"

	"github.com/yourname/share_lite/internal/models"
)

// Write транслирует доменную ошибку в HTTP-статус и тело ответа.
// ErrInvalidRange обрабатывается хендлером скачивания отдельно (нужен Content-Range).
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrMalformedChunk), errors.Is(err, models.ErrSessionMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrConflictingChunk):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusRequestedRangeNotSatisfiable)
	default:
		// Всё остальное — сбои ввода-вывода и внутренние ошибки: клиент может повторить.
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
