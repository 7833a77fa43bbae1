package chunk

import (
	"os"
	"path/filepath"
	"time"
)

// Upload идентифицирует одну staged-загрузку в корне хранилища.
type Upload struct {
	ShareID  string
	UploadID string
}

// SweepOnce однократно удаляет брошенные загрузки: каталоги, чей meta.json
// устарел и содержит неполный набор сегментов. Возвращает список убранных
// загрузок — вызывающий обязан снять связанное с ними состояние сборки.
func (s *Store) SweepOnce(ttl time.Duration) ([]Upload, error) {
	now := time.Now()
	shares, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}

	var removed []Upload
	for _, sh := range shares {
		if !sh.IsDir() {
			continue
		}

		shareDir := filepath.Join(s.root, sh.Name())
		uploads, err := os.ReadDir(shareDir)
		if err != nil {
			continue
		}

		for _, up := range uploads {
			if !up.IsDir() {
				continue
			}

			udir := filepath.Join(shareDir, up.Name())
			metaPath := filepath.Join(udir, metaFileName)
			fi, err := os.Stat(metaPath)
			if err != nil {
				continue
			}

			if now.Sub(fi.ModTime()) < ttl {
				continue
			}

			sm, err := readMeta(metaPath)
			if err != nil {
				continue
			}

			if len(sm.Segments) < sm.TotalChunks {
				if err := os.RemoveAll(udir); err != nil {
					continue
				}

				s.mu.Lock()
				delete(s.metaLocks, sh.Name()+"/"+up.Name())
				s.mu.Unlock()

				removed = append(removed, Upload{ShareID: sh.Name(), UploadID: up.Name()})
			}
		}
	}

	return removed, nil
}
