package meta

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/share_lite/internal/models"
)

func fileFixture(shareID, id, name string) models.FileMetadata {
	return models.FileMetadata{
		ID:        id,
		ShareID:   shareID,
		Name:      name,
		MimeType:  "application/octet-stream",
		Size:      42,
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryStore_SaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	want := fileFixture("sh", "f1", "a.txt")
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Get(ctx, "sh", "f1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.Get(ctx, "sh", "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Файл не виден через чужой shareID.
	_, err = s.Get(ctx, "other", "f1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryStore_ListPreservesCreationOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, fileFixture("sh", fmt.Sprintf("f%d", i), fmt.Sprintf("n%d", i))))
	}
	require.NoError(t, s.Save(ctx, fileFixture("other", "x", "x")))

	files, err := s.ListByShare(ctx, "sh")
	require.NoError(t, err)
	require.Len(t, files, 5)
	for i, f := range files {
		assert.Equal(t, fmt.Sprintf("f%d", i), f.ID)
	}

	empty, err := s.ListByShare(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, fileFixture("sh", "f1", "a")))
	require.NoError(t, s.Save(ctx, fileFixture("sh", "f2", "b")))

	require.NoError(t, s.Delete(ctx, "sh", "f1"))
	assert.ErrorIs(t, s.Delete(ctx, "sh", "f1"), models.ErrNotFound)

	files, err := s.ListByShare(ctx, "sh")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "f2", files[0].ID)
}

func TestMemoryStore_ConcurrentShares(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			shareID := fmt.Sprintf("sh%d", g%4)
			for i := 0; i < 50; i++ {
				id := fmt.Sprintf("g%d-f%d", g, i)
				if err := s.Save(ctx, fileFixture(shareID, id, id)); err != nil {
					t.Errorf("save %s: %v", id, err)
				}
				if _, err := s.Get(ctx, shareID, id); err != nil {
					t.Errorf("get %s: %v", id, err)
				}
			}
		}(g)
	}
	wg.Wait()

	for sh := 0; sh < 4; sh++ {
		files, err := s.ListByShare(ctx, fmt.Sprintf("sh%d", sh))
		require.NoError(t, err)
		assert.Len(t, files, 100)
	}
}
