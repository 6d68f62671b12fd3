package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/metrics"
)

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics middleware сбора HTTP метрик
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics создает новый middleware метрик
func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

// Handle записывает метрики запроса: метод, шаблон пути, статус, длительность
func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		// Шаблон маршрута вместо сырого пути, чтобы не раздувать кардинальность
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		m.metrics.RecordHTTPRequest(r.Method, path, recorder.status, time.Since(start))
	})
}
