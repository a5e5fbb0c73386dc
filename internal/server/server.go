package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rss_publisher/internal/ledger"
)

// Server хранит зависимости HTTP-обработчиков, в частности учёт публикаций.
type Server struct {
	ledger *ledger.Ledger
}

// NewServer создаёт новый экземпляр Server с переданным учётом.
func NewServer(l *ledger.Ledger) *Server {
	return &Server{ledger: l}
}

// HealthCheck отвечает 200 OK, если хранилище учёта доступно, иначе 503.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.ledger.Ping(r.Context()); err != nil {
		http.Error(w, "Ledger unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("OK"))
}

// Handler возвращает маршрутизатор со служебными эндпоинтами демона.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}
