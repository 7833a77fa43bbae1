package filesvc

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	meta "github.com/yourname/share_lite/internal/repo"
	"github.com/yourname/share_lite/internal/store/chunk"
	"github.com/yourname/share_lite/internal/store/content"
)

func newTestFiles(t *testing.T) *Files {
	t.Helper()

	chunks, err := chunk.New(t.TempDir())
	require.NoError(t, err)

	contents, err := content.NewFSStore(t.TempDir())
	require.NoError(t, err)

	return New(Deps{
		Meta:     meta.NewMemoryStore(),
		Chunks:   chunks,
		Contents: contents,
	})
}

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// submitAll отправляет части в заданном порядке и возвращает результат последней.
func submitAll(t *testing.T, s *Files, shareID, uploadID, name string, parts [][]byte, order []int) SubmitResult {
	t.Helper()

	var last SubmitResult
	for _, idx := range order {
		res, err := s.SubmitChunk(context.Background(), shareID, uploadID, name, b64(parts[idx]), idx, len(parts))
		require.NoError(t, err)
		last = res
	}

	return last
}
