package filesvc

import (
	"context"
	"io"
	"time"

	"github.com/yourname/share_lite/internal/models"
	meta "github.com/yourname/share_lite/internal/repo"
	"github.com/yourname/share_lite/internal/store/chunk"
	"github.com/yourname/share_lite/internal/store/content"
)

type (
	// Service объединяет операции сборки загрузок и выдачи файлов.
	Service interface {
		SubmitChunk(ctx context.Context, shareID, uploadID, name, payload string, index, total int) (SubmitResult, error)
		OpenDownload(ctx context.Context, shareID, fileID, rangeHeader string) (*Download, error)
		StreamZip(ctx context.Context, shareID string, w io.Writer) error
		Remove(ctx context.Context, shareID, fileID string) error
		ReclaimAbandoned(ttl time.Duration) error
	}
)

// SubmitResult описывает исход приёма части: File заполняется только запросом,
// завершившим сборку; остальные получают счётчики для подтверждения.
type SubmitResult struct {
	File     *models.FileMetadata
	Received int
	Total    int
}

type Deps struct {
	Meta     meta.Store
	Chunks   *chunk.Store
	Contents content.Store
}

type Files struct {
	Deps

	sessions sessionRegistry
}

// New конструирует сервис файлов с заданными зависимостями.
func New(deps Deps) *Files {
	return &Files{
		Deps:     deps,
		sessions: newSessionRegistry(),
	}
}

var _ Service = (*Files)(nil)
