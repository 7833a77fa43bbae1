package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yourname/share_lite/internal/models"
)

// FSStore кладёт блобы на локальный диск под ключами вида {shareID}/{fileID}.
type FSStore struct {
	baseDir string
}

// NewFSStore создаёт файловое хранилище, гарантируя существование каталога.
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}

	return &FSStore{baseDir: baseDir}, nil
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

// Put записывает блоб во временный файл и публикует его атомарным rename,
// чтобы читатели никогда не видели частично записанный файл.
func (s *FSStore) Put(ctx context.Context, key string, r io.Reader, size int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}

	tmp := dst + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create blob: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write blob: %w", err)
	}
	if size >= 0 && n != size {
		_ = os.Remove(tmp)
		return fmt.Errorf("blob size mismatch: want %d, got %d", size, n)
	}

	return os.Rename(tmp, dst)
}

// Open открывает блоб для чтения с произвольным позиционированием.
func (s *FSStore) Open(ctx context.Context, key string) (io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return f, nil
}

// Stat возвращает размер блоба.
func (s *FSStore) Stat(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	info, err := os.Stat(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, models.ErrNotFound
		}
		return 0, err
	}

	return info.Size(), nil
}

// Delete удаляет блоб; отсутствие файла считается ErrNotFound.
func (s *FSStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ErrNotFound
		}
		return err
	}

	return nil
}
