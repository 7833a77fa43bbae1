package meta

import (
	"context"
	"sync"

	"github.com/yourname/share_lite/internal/models"
)

// MemoryStore хранит метаданные только в оперативной памяти.
// Блокировки гранулярны по шарам: операции над разными шарами не конкурируют.
type MemoryStore struct {
	mu     sync.RWMutex
	shares map[string]*shareBucket
}

type shareBucket struct {
	mu    sync.RWMutex
	files map[string]models.FileMetadata
	order []string // fileID в порядке создания
}

// NewMemoryStore создаёт пустой in-memory индекс.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{shares: map[string]*shareBucket{}}
}

func (s *MemoryStore) bucket(shareID string, create bool) *shareBucket {
	s.mu.RLock()
	b, ok := s.shares[shareID]
	s.mu.RUnlock()
	if ok || !create {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok = s.shares[shareID]; ok {
		return b
	}
	b = &shareBucket{files: map[string]models.FileMetadata{}}
	s.shares[shareID] = b

	return b
}

// Get возвращает метаданные файла шары или ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, shareID, fileID string) (models.FileMetadata, error) {
	b := s.bucket(shareID, false)
	if b == nil {
		return models.FileMetadata{}, models.ErrNotFound
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	f, ok := b.files[fileID]
	if !ok {
		return models.FileMetadata{}, models.ErrNotFound
	}

	return f, nil
}

// Save регистрирует метаданные нового файла.
func (s *MemoryStore) Save(_ context.Context, file models.FileMetadata) error {
	b := s.bucket(file.ShareID, true)

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.files[file.ID]; !exists {
		b.order = append(b.order, file.ID)
	}
	b.files[file.ID] = file

	return nil
}

// Delete удаляет запись файла; отсутствие — ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, shareID, fileID string) error {
	b := s.bucket(shareID, false)
	if b == nil {
		return models.ErrNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.files[fileID]; !ok {
		return models.ErrNotFound
	}
	delete(b.files, fileID)
	for i, id := range b.order {
		if id == fileID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	return nil
}

// ListByShare возвращает файлы шары в порядке их создания.
func (s *MemoryStore) ListByShare(_ context.Context, shareID string) ([]models.FileMetadata, error) {
	b := s.bucket(shareID, false)
	if b == nil {
		return nil, nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.FileMetadata, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.files[id])
	}

	return out, nil
}

// Close ничего не делает для in-memory варианта.
func (s *MemoryStore) Close() {}
