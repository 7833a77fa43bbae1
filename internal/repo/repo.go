// Package meta реализует индекс метаданных финализированных файлов:
// in-memory вариант для тестов и лёгких инсталляций и Postgres для постоянного
// хранения. Вариант выбирается схемой DSN.
package meta

import (
	"context"
	"strings"

	"github.com/yourname/share_lite/internal/models"
)

// Store — контракт индекса метаданных файлов.
type Store interface {
	Get(ctx context.Context, shareID, fileID string) (models.FileMetadata, error)
	Save(ctx context.Context, file models.FileMetadata) error
	Delete(ctx context.Context, shareID, fileID string) error
	// ListByShare возвращает файлы шары в порядке создания.
	ListByShare(ctx context.Context, shareID string) ([]models.FileMetadata, error)
	Close()
}

// Open выбирает реализацию индекса по DSN: "memory://" либо Postgres.
func Open(ctx context.Context, dsn string) (Store, error) {
	if strings.HasPrefix(strings.TrimSpace(dsn), "memory://") {
		return NewMemoryStore(), nil
	}

	return OpenPostgres(ctx, dsn)
}
