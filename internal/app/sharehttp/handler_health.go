package sharehttp

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"
)

// healthStats — payload ответа /health.
type healthStats struct {
	OK           bool  `json:"ok"`
	StagingBytes int64 `json:"staging_bytes"`
	ContentBytes int64 `json:"content_bytes"`
}

// health возвращает агрегированную статистику по каталогам данных.
// Для s3-бэкенда учитывается только staging: объём бакета считает само хранилище.
func (a *Server) health(w http.ResponseWriter, _ *http.Request) {
	stats := healthStats{OK: true}

	staging, err := dirBytes(a.Cfg.StagingDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	stats.StagingBytes = staging

	if a.Cfg.ContentBackend == "fs" && a.Cfg.ContentDir != "" {
		content, err := dirBytes(a.Cfg.ContentDir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stats.ContentBytes = content
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// dirBytes суммирует размеры всех файлов в каталоге.
func dirBytes(root string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()

		return nil
	})

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, err
	}

	return total, nil
}
