package filesvc

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yourname/share_lite/internal/models"
)

// Download описывает подготовленную выдачу файла: метаданные, байтовое окно
// [Start, End] и поток ровно этой длины. Для запроса без Range окно покрывает
// весь файл и Partial=false.
type Download struct {
	File    models.FileMetadata
	Start   int64
	End     int64
	Partial bool
	Body    io.ReadCloser
}

// Length возвращает число байт, которое отдаст Body.
func (d *Download) Length() int64 {
	return d.End - d.Start + 1
}

// OpenDownload открывает файл шары для выдачи, учитывая необязательный Range.
// Для ranged-запроса поток позиционируется seek'ом на начало окна и ограничен
// его длиной: файл целиком никогда не буферизуется независимо от размера.
func (s *Files) OpenDownload(ctx context.Context, shareID, fileID, rangeHeader string) (*Download, error) {
	file, err := s.Meta.Get(ctx, shareID, fileID)
	if err != nil {
		return nil, err
	}

	blob, err := s.Contents.Open(ctx, file.ContentKey())
	if err != nil {
		return nil, err
	}

	if rangeHeader == "" {
		return &Download{
			File:  file,
			Start: 0,
			End:   file.Size - 1,
			Body:  blob,
		}, nil
	}

	start, end, err := parseRange(rangeHeader, file.Size)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	if _, err := blob.Seek(start, io.SeekStart); err != nil {
		_ = blob.Close()
		return nil, fmt.Errorf("seek to %d: %w", start, err)
	}

	return &Download{
		File:    file,
		Start:   start,
		End:     end,
		Partial: true,
		Body: &windowReader{
			r: io.LimitReader(blob, end-start+1),
			c: blob,
		},
	}, nil
}

// RangeError сообщает о неудовлетворимом Range; Size нужен хендлеру для
// заголовка "Content-Range: bytes */{size}" в ответе 416.
type RangeError struct {
	Size   int64
	reason string
}

func (e *RangeError) Error() string { return "invalid range: " + e.reason }
func (e *RangeError) Unwrap() error { return models.ErrInvalidRange }

// parseRange разбирает заголовок вида "bytes=start-end". Start обязателен,
// end по умолчанию равен size-1 и прижимается к size-1 при выходе за границу.
func parseRange(header string, size int64) (start, end int64, err error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, &RangeError{Size: size, reason: fmt.Sprintf("unsupported unit in %q", header)}
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return 0, 0, &RangeError{Size: size, reason: fmt.Sprintf("missing separator in %q", header)}
	}

	start, err = strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
	if err != nil || start < 0 {
		return 0, 0, &RangeError{Size: size, reason: fmt.Sprintf("bad start in %q", header)}
	}

	end = size - 1
	if v := strings.TrimSpace(endStr); v != "" {
		end, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, 0, &RangeError{Size: size, reason: fmt.Sprintf("bad end in %q", header)}
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start >= size || start > end {
		return 0, 0, &RangeError{Size: size, reason: fmt.Sprintf("bytes %d-%d of %d", start, end, size)}
	}

	return start, end, nil
}

// windowReader ограничивает чтение окном диапазона и закрывает исходный блоб.
type windowReader struct {
	r io.Reader
	c io.Closer
}

func (w *windowReader) Read(p []byte) (int, error) { return w.r.Read(p) }
func (w *windowReader) Close() error               { return w.c.Close() }
