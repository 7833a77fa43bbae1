package filesvc

import (
	"sync"
	"time"
)

// ReclaimAbandoned убирает брошенные незавершённые загрузки: staged-сегменты
// с диска и их сессии из реестра. Сессия обязана умереть вместе с сегментами —
// иначе уцелевший claim превратит повторную отправку той же части в no-op и
// загрузка под этим uploadID никогда не соберётся.
func (s *Files) ReclaimAbandoned(ttl time.Duration) error {
	removed, err := s.Chunks.SweepOnce(ttl)
	if err != nil {
		return err
	}

	for _, up := range removed {
		s.sessions.drop(up.ShareID, up.UploadID)
	}

	return nil
}

// StartGC стартует периодическую очистку брошенных загрузок.
func (s *Files) StartGC(ttl time.Duration, every time.Duration) func() {
	if every <= 0 || ttl <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(every)
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = s.ReclaimAbandoned(ttl)
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
		})
	}
}
