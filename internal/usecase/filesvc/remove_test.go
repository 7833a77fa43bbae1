package filesvc

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/share_lite/internal/models"
)

func TestRemove(t *testing.T) {
	s := newTestFiles(t)
	f := uploadFixture(t, s, "sh", [][]byte{[]byte("payload")})

	require.NoError(t, s.Remove(context.Background(), "sh", f.ID))

	_, err := s.OpenDownload(context.Background(), "sh", f.ID, "")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Повторное удаление сообщает об отсутствии.
	assert.ErrorIs(t, s.Remove(context.Background(), "sh", f.ID), models.ErrNotFound)
}

func TestRemove_UnknownFile(t *testing.T) {
	s := newTestFiles(t)

	assert.ErrorIs(t, s.Remove(context.Background(), "sh", "nope"), models.ErrNotFound)
}

func TestRemove_DoesNotCorruptInflightDownload(t *testing.T) {
	s := newTestFiles(t)

	payload := bytes.Repeat([]byte("0123456789"), 512)
	res, err := s.SubmitChunk(context.Background(), "sh", "up", "big.bin", b64(payload), 0, 1)
	require.NoError(t, err)
	require.NotNil(t, res.File)

	d, err := s.OpenDownload(context.Background(), "sh", res.File.ID, "")
	require.NoError(t, err)
	defer d.Body.Close()

	// Часть потока уже ушла клиенту.
	head := make([]byte, 1024)
	_, err = io.ReadFull(d.Body, head)
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), "sh", res.File.ID))

	// Удаление не портит уже открытый поток: остаток дочитывается байт в байт.
	tail, err := io.ReadAll(d.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, append(head, tail...))

	// Новые чтения при этом уже не начинаются.
	_, err = s.OpenDownload(context.Background(), "sh", res.File.ID, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemove_LeavesSiblings(t *testing.T) {
	s := newTestFiles(t)

	uploadNamed(t, s, "sh", "u1", "keep.txt", []byte("keep"))
	victim, err := s.SubmitChunk(context.Background(), "sh", "u2", "drop.txt", b64([]byte("drop")), 0, 1)
	require.NoError(t, err)
	require.NotNil(t, victim.File)

	require.NoError(t, s.Remove(context.Background(), "sh", victim.File.ID))

	files, err := s.Meta.ListByShare(context.Background(), "sh")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.txt", files[0].Name)
}
