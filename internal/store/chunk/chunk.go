// Package chunk реализует staging-хранилище незавершённых загрузок поверх
// локального диска. Каждой загрузке соответствует каталог {shareID}/{uploadID},
// каждой принятой части — отдельный файл-сегмент по её индексу плюс запись
// в meta.json. Сегменты склеиваются в порядке индексов при финализации.
package chunk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourname/share_lite/pkg/shareproto"
)

const (
	segmentFilenameFormat = "segment_%06d"
	metaFileName          = "meta.json"
)

// Store хранит сегменты частей на диске под выделенным корневым каталогом.
type Store struct {
	root string

	// metaLocks сериализует read-modify-write meta.json в рамках одной загрузки;
	// записи сегментов с разными индексами идут без взаимного исключения.
	mu        sync.Mutex
	metaLocks map[string]*sync.Mutex
}

// New создаёт staging-хранилище, гарантируя существование корневого каталога.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create staging root: %w", err)
	}

	return &Store{
		root:      root,
		metaLocks: map[string]*sync.Mutex{},
	}, nil
}

// uploadDir валидирует идентификаторы и возвращает каталог загрузки.
func (s *Store) uploadDir(shareID, uploadID string) (string, error) {
	if !shareproto.ValidID(shareID) || !shareproto.ValidID(uploadID) {
		return "", fmt.Errorf("invalid staging path")
	}

	return filepath.Join(s.root, shareID, uploadID), nil
}

func segmentPath(dir string, idx int) string {
	return filepath.Join(dir, fmt.Sprintf(segmentFilenameFormat, idx))
}

// WriteSegment сохраняет декодированные байты части под её индексом и фиксирует
// запись в meta.json. Повторная запись того же индекса перезаписывает сегмент —
// политику конфликтов контролирует вызывающий ChunkAssembler.
func (s *Store) WriteSegment(shareID, uploadID, name string, idx, total int, data []byte, sha string) error {
	dir, err := s.uploadDir(shareID, uploadID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	if err := os.WriteFile(segmentPath(dir, idx), data, 0o644); err != nil {
		return fmt.Errorf("write segment %d: %w", idx, err)
	}

	lock := s.metaLock(shareID + "/" + uploadID)
	lock.Lock()
	defer lock.Unlock()

	return writeMeta(filepath.Join(dir, metaFileName), shareID, uploadID, name, total, idx, int64(len(data)), sha)
}

// OpenSegment открывает сегмент по индексу для чтения при склейке.
func (s *Store) OpenSegment(shareID, uploadID string, idx int) (io.ReadCloser, error) {
	dir, err := s.uploadDir(shareID, uploadID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(segmentPath(dir, idx))
	if err != nil {
		return nil, fmt.Errorf("missing segment %d: %w", idx, err)
	}

	return f, nil
}

// Discard удаляет каталог загрузки со всеми сегментами.
func (s *Store) Discard(shareID, uploadID string) error {
	dir, err := s.uploadDir(shareID, uploadID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.metaLocks, shareID+"/"+uploadID)
	s.mu.Unlock()

	return os.RemoveAll(dir)
}

func (s *Store) metaLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.metaLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.metaLocks[key] = lock
	}

	return lock
}
