package chunk

import (
	"encoding/json"
	"os"
)

// segmentMeta описывает одну принятую часть загрузки.
type segmentMeta struct {
	Index  int    `json:"index"`
	Size   int64  `json:"size"`
	Sha256 string `json:"sha256"`
}

// stagingMeta хранится на диске рядом с сегментами и агрегирует прогресс сборки.
type stagingMeta struct {
	ShareID     string              `json:"share_id"`
	UploadID    string              `json:"upload_id"`
	Name        string              `json:"name"`
	TotalChunks int                 `json:"total_chunks"`
	Segments    map[int]segmentMeta `json:"segments"`
}

// writeMeta обновляет запись о части в meta.json загрузки.
func writeMeta(path, shareID, uploadID, name string, total, idx int, size int64, sha string) error {
	sm := stagingMeta{
		ShareID:     shareID,
		UploadID:    uploadID,
		Name:        name,
		TotalChunks: total,
		Segments:    map[int]segmentMeta{},
	}

	// Если meta.json существует, загружаем текущую структуру перед обновлением.
	if b, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(b, &sm); err != nil {
			return err
		}
	}

	sm.Segments[idx] = segmentMeta{
		Index:  idx,
		Size:   size,
		Sha256: sha,
	}

	b, err := json.MarshalIndent(sm, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}

// readMeta читает прогресс загрузки с диска.
func readMeta(path string) (*stagingMeta, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sm stagingMeta
	if err := json.Unmarshal(b, &sm); err != nil {
		return nil, err
	}

	return &sm, nil
}
