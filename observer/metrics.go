package observer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ avl.Handler = &Metrics{}

// Metrics exports tree modifications as prometheus metrics.
type Metrics struct {
	inserts   prometheus.Counter
	updates   prometheus.Counter
	removes   prometheus.Counter
	rotations *prometheus.CounterVec
	size      prometheus.Gauge
}

// NewMetrics creates Metrics handler registering its collectors with given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		inserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "avl_inserts_total",
			Help: "Number of inserted tree nodes",
		}),
		updates: factory.NewCounter(prometheus.CounterOpts{
			Name: "avl_updates_total",
			Help: "Number of values overwritten in place",
		}),
		removes: factory.NewCounter(prometheus.CounterOpts{
			Name: "avl_removes_total",
			Help: "Number of removed tree nodes",
		}),
		rotations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avl_rotations_total",
			Help: "Number of single rotations performed while rebalancing",
		}, []string{"direction"}),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Name: "avl_size",
			Help: "Number of nodes in the tree",
		}),
	}
}

func (m *Metrics) OnInsert(key any) {
	m.inserts.Inc()
	m.size.Inc()
}

func (m *Metrics) OnUpdate(key any) {
	m.updates.Inc()
}

func (m *Metrics) OnRemove(key any) {
	m.removes.Inc()
	m.size.Dec()
}

func (m *Metrics) OnRotate(rotation avl.Rotation, pivot any) {
	m.rotations.WithLabelValues(rotation.String()).Inc()
}

// SetSize overrides the size gauge, used when the tree is cleared without per node notifications.
func (m *Metrics) SetSize(size int) {
	m.size.Set(float64(size))
}
