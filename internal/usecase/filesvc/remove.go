package filesvc

import (
	"context"
	"errors"
	"log"

	"github.com/yourname/share_lite/internal/models"
)

// Remove удаляет файл шары. Сначала снимается запись метаданных — после этого
// новые чтения уже не начнутся, — затем удаляется блоб. Уже открытый читателем
// блоб доживает по семантике нижележащего хранилища (best-effort).
func (s *Files) Remove(ctx context.Context, shareID, fileID string) error {
	file, err := s.Meta.Get(ctx, shareID, fileID)
	if err != nil {
		return err
	}

	if err := s.Meta.Delete(ctx, shareID, fileID); err != nil {
		return err
	}

	if err := s.Contents.Delete(ctx, file.ContentKey()); err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Printf("remove blob %s: %v", file.ContentKey(), err)
	}

	return nil
}
