package models

import "time"

// FileMetadata описывает финализированный файл, принадлежащий шаре.
// Создаётся один раз при завершении сборки и далее неизменяем.
type FileMetadata struct {
	ID        string    `json:"id"`
	ShareID   string    `json:"shareId"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContentKey возвращает ключ блоба файла в ContentStore.
func (f FileMetadata) ContentKey() string {
	return f.ShareID + "/" + f.ID
}
