package chunk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backdateMeta(t *testing.T, s *Store, shareID, uploadID string, age time.Duration) {
	t.Helper()

	metaPath := filepath.Join(s.root, shareID, uploadID, metaFileName)
	past := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(metaPath, past, past))
}

func uploadExists(s *Store, shareID, uploadID string) bool {
	_, err := os.Stat(filepath.Join(s.root, shareID, uploadID))
	return err == nil
}

func TestSweepOnce(t *testing.T) {
	s := newTestStore(t)

	// Брошенная неполная загрузка старше TTL — удаляется.
	require.NoError(t, s.WriteSegment("sh", "stale", "f", 0, 3, []byte("x"), "sha"))
	backdateMeta(t, s, "sh", "stale", 2*time.Hour)

	// Неполная, но свежая — остаётся.
	require.NoError(t, s.WriteSegment("sh", "fresh", "f", 0, 3, []byte("x"), "sha"))

	// Полная, пусть и старая — не трогаем: её заберёт финализация.
	require.NoError(t, s.WriteSegment("sh", "full", "f", 0, 1, []byte("x"), "sha"))
	backdateMeta(t, s, "sh", "full", 2*time.Hour)

	removed, err := s.SweepOnce(time.Hour)
	require.NoError(t, err)

	assert.False(t, uploadExists(s, "sh", "stale"))
	assert.True(t, uploadExists(s, "sh", "fresh"))
	assert.True(t, uploadExists(s, "sh", "full"))

	// Убранные загрузки перечисляются — по ним снимается состояние сборки.
	require.Len(t, removed, 1)
	assert.Equal(t, Upload{ShareID: "sh", UploadID: "stale"}, removed[0])
}

func TestSweepOnce_EmptyRoot(t *testing.T) {
	s := newTestStore(t)

	removed, err := s.SweepOnce(time.Hour)
	assert.NoError(t, err)
	assert.Empty(t, removed)
}
