package filesvc

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// StreamZip пишет в w zip-архив со всеми файлами шары в порядке их создания.
// Каждый блоб транслируется из ContentStore прямо в архив; архив нигде не
// материализуется целиком. Шара без файлов даёт валидный пустой архив.
// Ошибка чтения любого блоба обрывает поток: отправленные байты не отзываются.
func (s *Files) StreamZip(ctx context.Context, shareID string, w io.Writer) error {
	files, err := s.Meta.ListByShare(ctx, shareID)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	used := map[string]int{}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			_ = zw.Close()
			return err
		}

		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:     uniqueEntryName(used, f.Name),
			Method:   zip.Deflate,
			Modified: f.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("archive entry %s: %w", f.Name, err)
		}

		rc, err := s.Contents.Open(ctx, f.ContentKey())
		if err != nil {
			return fmt.Errorf("archive read %s: %w", f.ID, err)
		}

		_, copyErr := io.Copy(entry, rc)
		_ = rc.Close()
		if copyErr != nil {
			return fmt.Errorf("archive copy %s: %w", f.ID, copyErr)
		}
	}

	return zw.Close()
}

// uniqueEntryName нормализует имя для архива и разводит дубликаты суффиксом (n).
func uniqueEntryName(used map[string]int, name string) string {
	name = sanitizeEntryName(name)

	n := used[name]
	used[name] = n + 1
	if n == 0 {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	return fmt.Sprintf("%s (%d)%s", base, n, ext)
}

func sanitizeEntryName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(name, "\x00", "")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Trim(name, ". ")
	if name == "" {
		return "file"
	}

	return name
}
