package models

// Chunk описывает одну часть загрузки: порядковый индекс и декодированные байты.
type Chunk struct {
	Index int
	Total int
	Data  []byte
}

// Valid проверяет согласованность индексов части.
func (c Chunk) Valid() bool {
	return c.Total > 0 && c.Index >= 0 && c.Index < c.Total
}

// UploadAck возвращается на принятую, но не финализирующую часть.
type UploadAck struct {
	Status   string `json:"status"`
	Received int    `json:"received"`
	Total    int    `json:"total"`
}
