package chunk

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestWriteOpenSegment(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSegment("sh", "up", "f.bin", 1, 3, []byte("second"), "sha-b"))
	require.NoError(t, s.WriteSegment("sh", "up", "f.bin", 0, 3, []byte("first"), "sha-a"))

	rc, err := s.OpenSegment("sh", "up", 0)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, []byte("first"), got)

	// Ещё не записанный индекс недоступен.
	_, err = s.OpenSegment("sh", "up", 2)
	assert.Error(t, err)
}

func TestWriteSegment_MetaAccumulates(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSegment("sh", "up", "f.bin", 0, 2, []byte("aaaa"), "sha-0"))
	require.NoError(t, s.WriteSegment("sh", "up", "f.bin", 1, 2, []byte("bb"), "sha-1"))

	sm, err := readMeta(filepath.Join(s.root, "sh", "up", metaFileName))
	require.NoError(t, err)

	assert.Equal(t, "sh", sm.ShareID)
	assert.Equal(t, "up", sm.UploadID)
	assert.Equal(t, "f.bin", sm.Name)
	assert.Equal(t, 2, sm.TotalChunks)
	require.Len(t, sm.Segments, 2)
	assert.Equal(t, int64(4), sm.Segments[0].Size)
	assert.Equal(t, "sha-1", sm.Segments[1].Sha256)
}

func TestWriteSegment_ConcurrentIndexes(t *testing.T) {
	s := newTestStore(t)

	const total = 24
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := s.WriteSegment("sh", "up", "f.bin", idx, total, []byte{byte(idx)}, "sha"); err != nil {
				t.Errorf("segment %d: %v", idx, err)
			}
		}(i)
	}
	wg.Wait()

	sm, err := readMeta(filepath.Join(s.root, "sh", "up", metaFileName))
	require.NoError(t, err)
	assert.Len(t, sm.Segments, total, "meta.json не должен терять записи при параллельной записи")
}

func TestStore_RejectsTraversal(t *testing.T) {
	s := newTestStore(t)

	assert.Error(t, s.WriteSegment("..", "up", "f", 0, 1, nil, ""))
	assert.Error(t, s.WriteSegment("sh", "a/b", "f", 0, 1, nil, ""))
	_, err := s.OpenSegment("sh", "..", 0)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteSegment("sh", "up", "f", 0, 2, []byte("x"), "sha"))
	require.NoError(t, s.Discard("sh", "up"))

	_, err := os.Stat(filepath.Join(s.root, "sh", "up"))
	assert.True(t, os.IsNotExist(err))

	// Discard несуществующей загрузки — no-op.
	assert.NoError(t, s.Discard("sh", "up"))
}
