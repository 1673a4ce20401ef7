package qreg

import "sync"

/*
Metrics accumulates counters for one register: gates applied per kind,
measurements, group collapses, and how often the generator was consumed.
Counters are internal observability only; nothing is exported anywhere,
callers pull a Snapshot when they want numbers.
*/
type Metrics struct {
	mu sync.RWMutex

	QubitsAdded    int64
	GatesApplied   map[string]int64
	Measurements   int64
	GroupCollapses int64
	RandomDraws    int64
}

// MetricsSnapshot is a detached copy of the counters at one instant.
type MetricsSnapshot struct {
	QubitsAdded    int64
	GatesApplied   map[string]int64
	Measurements   int64
	GroupCollapses int64
	RandomDraws    int64
}

func newMetrics() *Metrics {
	return &Metrics{
		GatesApplied: make(map[string]int64),
	}
}

func (m *Metrics) recordQubit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QubitsAdded++
}

func (m *Metrics) recordGate(kind GateKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GatesApplied[kind.String()]++
}

func (m *Metrics) recordMeasurement(draws int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Measurements++
	m.RandomDraws += draws
}

func (m *Metrics) recordGroupCollapse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GroupCollapses++
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	gates := make(map[string]int64, len(m.GatesApplied))
	for k, v := range m.GatesApplied {
		gates[k] = v
	}
	return MetricsSnapshot{
		QubitsAdded:    m.QubitsAdded,
		GatesApplied:   gates,
		Measurements:   m.Measurements,
		GroupCollapses: m.GroupCollapses,
		RandomDraws:    m.RandomDraws,
	}
}
