package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector junta los contadores del motor de adherencia.
// El servicio lo consume vía la interfaz adherence.Metrics; acá vive la
// implementación prometheus y el handler de /metrics.
type Collector struct {
	registry *prometheus.Registry

	marks         *prometheus.CounterVec
	storeFailures *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		marks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pills_marks_total",
			Help: "Marcas de tomas registradas, por resultado.",
		}, []string{"taken"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pills_store_errors_total",
			Help: "Fallos del adherence store, por operación.",
		}, []string{"op"}),
	}

	c.registry.MustRegister(c.marks, c.storeFailures)
	return c
}

func (c *Collector) MarkRecorded(taken bool) {
	c.marks.WithLabelValues(strconv.FormatBool(taken)).Inc()
}

func (c *Collector) StoreFailure(op string) {
	c.storeFailures.WithLabelValues(op).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
