// Package content определяет хранилище финализированных блобов. Блоб неизменяем
// после записи; единственная терминальная операция — удаление.
package content

import (
	"context"
	"io"
)

// Store — контракт хранилища готовых файлов. Open возвращает io.ReadSeekCloser,
// чтобы ranged-чтение позиционировалось напрямую, без буферизации всего файла.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadSeekCloser, error)
	Stat(ctx context.Context, key string) (int64, error)
	Delete(ctx context.Context, key string) error
}
