package filesvc

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/yourname/share_lite/internal/models"
	"github.com/yourname/share_lite/pkg/shareproto"
)

// SubmitChunk принимает одну часть загрузки. Части могут приходить в произвольном
// порядке и из параллельных запросов; каждая попадает в собственный сегмент
// staging-хранилища. Запрос, доставивший последнюю недостающую часть, запускает
// финализацию и получает метаданные собранного файла.
func (s *Files) SubmitChunk(ctx context.Context, shareID, uploadID, name, payload string, index, total int) (SubmitResult, error) {
	if !shareproto.ValidID(shareID) || !shareproto.ValidID(uploadID) {
		return SubmitResult{}, fmt.Errorf("%w: invalid identifiers", models.ErrMalformedChunk)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", models.ErrMalformedChunk, err)
	}

	ch := models.Chunk{Index: index, Total: total, Data: data}
	if !ch.Valid() {
		return SubmitResult{}, fmt.Errorf("%w: chunk index %d out of range [0,%d)", models.ErrMalformedChunk, index, total)
	}

	sum := sha256.Sum256(ch.Data)
	sha := hex.EncodeToString(sum[:])

	sess := s.sessions.acquire(shareID, uploadID, name, total)

	sess.mu.Lock()
	if sess.total != total {
		sess.mu.Unlock()
		return SubmitResult{}, fmt.Errorf("%w: declared %d chunks, session expects %d", models.ErrSessionMismatch, total, sess.total)
	}

	if st, ok := sess.chunks[index]; ok {
		// Повторная отправка: идентичная нагрузка — no-op, другая — конфликт.
		if st.sha != sha {
			sess.mu.Unlock()
			return SubmitResult{}, fmt.Errorf("%w: chunk %d resubmitted with different payload", models.ErrConflictingChunk, index)
		}
	} else {
		sess.chunks[index] = chunkState{sha: sha, size: int64(len(data))}
		sess.mu.Unlock()

		werr := s.Chunks.WriteSegment(shareID, uploadID, name, index, total, data, sha)

		sess.mu.Lock()
		if werr != nil {
			// Сегмент не записан: снимаем claim, клиент повторит ту же часть.
			delete(sess.chunks, index)
			sess.mu.Unlock()
			return SubmitResult{}, fmt.Errorf("stage chunk %d: %w", index, werr)
		}
		st := sess.chunks[index]
		st.done = true
		sess.chunks[index] = st
		sess.bytes += int64(len(data))
	}

	// Переход "все части на месте → финализация" выполняется ровно один раз,
	// даже если последние части пришли одновременно.
	if !sess.complete() || sess.finalizing {
		res := SubmitResult{Received: sess.received(), Total: sess.total}
		sess.mu.Unlock()
		return res, nil
	}
	sess.finalizing = true
	size := sess.bytes
	declaredName := sess.name
	sess.mu.Unlock()

	file, err := s.finalize(ctx, shareID, uploadID, declaredName, total, size)
	if err != nil {
		// Сегменты остаются на диске: повторная отправка финальной части
		// перезапустит финализацию.
		sess.mu.Lock()
		sess.finalizing = false
		sess.mu.Unlock()
		return SubmitResult{}, err
	}

	s.sessions.drop(shareID, uploadID)
	if err := s.Chunks.Discard(shareID, uploadID); err != nil {
		// Блоб уже собран; брошенный staging подберёт GC.
		return SubmitResult{File: &file, Received: total, Total: total}, nil
	}

	return SubmitResult{File: &file, Received: total, Total: total}, nil
}
