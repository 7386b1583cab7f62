package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusSource reports the streamer's visible animation state.
type StatusSource interface {
	Status() (animation string, crossfading bool)
}

// Api serves health, streamer status and Prometheus metrics.
type Api struct {
	addr   string
	status StatusSource
}

// NewApi creates an instance of an Api.
func NewApi(addr string, status StatusSource) *Api {
	a := new(Api)
	a.addr = addr
	a.status = status
	return a
}

// Handler builds the HTTP routes.
func (a *Api) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/status", a.handleStatus)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	animation, crossfading := a.status.Status()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(struct {
		Animation   string `json:"animation"`
		Crossfading bool   `json:"crossfading"`
	}{animation, crossfading})
	if err != nil {
		log.Printf("status encode: %v", err)
	}
}

// Serve listens on the configured address until the listener fails.
func (a *Api) Serve() error {
	log.Printf("api listening on %s", a.addr)
	return http.ListenAndServe(a.addr, a.Handler())
}
