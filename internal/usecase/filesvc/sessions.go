package filesvc

import "sync"

// chunkState фиксирует принятую часть: хеш для проверки повторной отправки,
// размер и признак завершённой записи сегмента на диск.
type chunkState struct {
	sha  string
	size int64
	done bool
}

// uploadSession — транзиентное состояние незавершённой сборки одного файла.
// Мьютекс сессии охраняет только bookkeeping: записи сегментов с разными
// индексами идут параллельно, вне блокировки.
type uploadSession struct {
	mu sync.Mutex

	shareID  string
	uploadID string
	name     string
	total    int

	chunks     map[int]chunkState
	bytes      int64
	finalizing bool
}

// complete сообщает, записаны ли все части. Вызывается под sess.mu.
func (s *uploadSession) complete() bool {
	if len(s.chunks) != s.total {
		return false
	}
	for _, st := range s.chunks {
		if !st.done {
			return false
		}
	}

	return true
}

// received возвращает число полностью записанных частей. Вызывается под sess.mu.
func (s *uploadSession) received() int {
	n := 0
	for _, st := range s.chunks {
		if st.done {
			n++
		}
	}

	return n
}

// sessionRegistry — реестр активных загрузок с ключом shareID/uploadID.
// Глобальная блокировка держится только на время поиска/создания сессии,
// дальше конкуренция идёт по мьютексам отдельных сессий.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*uploadSession
}

func newSessionRegistry() sessionRegistry {
	return sessionRegistry{sessions: map[string]*uploadSession{}}
}

func sessionKey(shareID, uploadID string) string {
	return shareID + "/" + uploadID
}

// acquire возвращает сессию загрузки, создавая её по первой части.
func (r *sessionRegistry) acquire(shareID, uploadID, name string, total int) *uploadSession {
	key := sessionKey(shareID, uploadID)

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[key]
	if !ok {
		sess = &uploadSession{
			shareID:  shareID,
			uploadID: uploadID,
			name:     name,
			total:    total,
			chunks:   map[int]chunkState{},
		}
		r.sessions[key] = sess
	}

	return sess
}

// drop выбрасывает сессию из реестра после финализации.
func (r *sessionRegistry) drop(shareID, uploadID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionKey(shareID, uploadID))
}
