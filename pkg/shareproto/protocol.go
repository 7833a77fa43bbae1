// Package shareproto описывает wire-формат протокола загрузки частей.
package shareproto

import (
	"regexp"
	"strings"
)

// Параметры протокола загрузки: имена query-параметров POST /shares/{shareID}/files.
const (
	ParamUploadID    = "id"
	ParamName        = "name"
	ParamChunkIndex  = "chunkIndex"
	ParamTotalChunks = "totalChunks"
	ParamDownload    = "download"
)

// validID ограничивает идентификаторы шар и загрузок безопасным для ФС алфавитом.
var validID = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidID сообщает, можно ли использовать идентификатор как компонент пути.
func ValidID(id string) bool {
	return id != "" && id != "." && id != ".." && validID.MatchString(id)
}

// ChunkPayload выделяет base64-нагрузку из тела запроса части: строки вида
// data-URL из двух частей через запятую. Тело без запятой означает пустую
// нагрузку — часть нулевой длины допустима для пустых файлов.
func ChunkPayload(body string) string {
	if i := strings.IndexByte(body, ','); i >= 0 {
		return body[i+1:]
	}

	return ""
}
