package metrics

import (
	"sort"
	"sync"
	"time"
)

// CallStats accumulates the outcome of calls to a single tool.
type CallStats struct {
	Calls    int64
	Failures int64
	Duration time.Duration
}

func (stats CallStats) AverageDuration() time.Duration {
	if stats.Calls == 0 {
		return 0
	}

	return stats.Duration / time.Duration(stats.Calls)
}

// CallMetrics tracks tool calls by tool name. It is safe for concurrent use.
type CallMetrics struct {
	mu    sync.RWMutex
	stats map[string]*CallStats
}

func NewCallMetrics() *CallMetrics {
	return &CallMetrics{stats: map[string]*CallStats{}}
}

// RecordCall records one finished call. failed covers error results too.
func (m *CallMetrics) RecordCall(name string, failed bool, duration time.Duration) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stats, ok := m.stats[name]
	if !ok {
		stats = &CallStats{}
		m.stats[name] = stats
	}

	stats.Calls++
	if failed {
		stats.Failures++
	}
	stats.Duration += duration
}

func (m *CallMetrics) Stats(name string) CallStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if stats, ok := m.stats[name]; ok {
		return *stats
	}

	return CallStats{}
}

// GetMetrics returns a snapshot keyed by tool name, in name order.
func (m *CallMetrics) GetMetrics() []map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.stats))
	for name := range m.stats {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		stats := m.stats[name]
		out = append(out, map[string]any{
			"tool":         name,
			"calls":        stats.Calls,
			"failures":     stats.Failures,
			"avg_duration": stats.AverageDuration().Seconds(),
		})
	}

	return out
}
