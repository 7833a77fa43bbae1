package filesvc

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yourname/share_lite/internal/models"
)

// finalize склеивает сегменты в порядке индексов в единый блоб ContentStore и
// регистрирует метаданные файла. Сегменты транслируются через pipe: итоговый
// файл никогда не собирается в памяти целиком. Размер берётся из инкрементального
// счётчика сессии и не пересчитывается по собранному блобу.
func (s *Files) finalize(ctx context.Context, shareID, uploadID, name string, total int, size int64) (models.FileMetadata, error) {
	file := models.FileMetadata{
		ID:        uuid.NewString(),
		ShareID:   shareID,
		Name:      name,
		MimeType:  detectMimeType(name),
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}

	pr, pw := io.Pipe()
	eg, egCtx := errgroup.WithContext(ctx)

	// Писатель: читает сегменты строго по порядку и пишет в pipe.
	eg.Go(func() error {
		for idx := 0; idx < total; idx++ {
			if err := egCtx.Err(); err != nil {
				_ = pw.CloseWithError(err)
				return err
			}

			rc, err := s.Chunks.OpenSegment(shareID, uploadID, idx)
			if err != nil {
				_ = pw.CloseWithError(err)
				return err
			}

			_, copyErr := io.Copy(pw, rc)
			_ = rc.Close()
			if copyErr != nil {
				_ = pw.CloseWithError(copyErr)
				return copyErr
			}
		}

		return pw.Close()
	})

	if err := s.Contents.Put(egCtx, file.ContentKey(), pr, size, file.MimeType); err != nil {
		_ = pr.CloseWithError(err)
		_ = eg.Wait()
		return models.FileMetadata{}, fmt.Errorf("assemble blob: %w", err)
	}
	if err := eg.Wait(); err != nil {
		_ = s.Contents.Delete(ctx, file.ContentKey())
		return models.FileMetadata{}, fmt.Errorf("concatenate segments: %w", err)
	}

	if err := s.Meta.Save(ctx, file); err != nil {
		_ = s.Contents.Delete(ctx, file.ContentKey())
		return models.FileMetadata{}, fmt.Errorf("register file metadata: %w", err)
	}

	return file, nil
}
