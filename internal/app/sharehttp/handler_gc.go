package sharehttp

import "net/http"

// gcOnce вручную запускает сбор брошенных незавершённых загрузок.
func (a *Server) gcOnce(w http.ResponseWriter, _ *http.Request) {
	_ = a.Files.ReclaimAbandoned(a.gcTTL())
	w.WriteHeader(http.StatusNoContent)
}
