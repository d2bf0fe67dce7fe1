package monitor

import (
	"sync"
	"time"
)

// Collector times the steps of analysis runs. It is safe for concurrent
// use; the watch command shares one across every re-run.
type Collector struct {
	started time.Time
	now     func() time.Time

	runs   Counter
	failed Counter
	tokens Counter

	mu     sync.RWMutex
	timers map[OperationType]*Timer
}

// New creates a collector whose uptime starts now
func New() *Collector {
	c := &Collector{
		now:    time.Now,
		timers: make(map[OperationType]*Timer, len(Operations)),
	}
	c.started = c.now()
	for _, op := range Operations {
		c.timers[op] = NewTimer()
	}
	return c
}

// Track times fn under op and returns its error
func (c *Collector) Track(op OperationType, fn func() error) error {
	start := c.now()
	err := fn()
	c.timer(op).Record(c.now().Sub(start), err != nil)
	return err
}

// RunFinished records the outcome of one complete run
func (c *Collector) RunFinished(tokens int, err error) {
	c.runs.Inc()
	if err != nil {
		c.failed.Inc()
		return
	}
	c.tokens.Add(int64(tokens))
}

func (c *Collector) timer(op OperationType) *Timer {
	c.mu.RLock()
	t, ok := c.timers[op]
	c.mu.RUnlock()
	if ok {
		return t
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok = c.timers[op]; !ok {
		t = NewTimer()
		c.timers[op] = t
	}
	return t
}

// Snapshot is a point-in-time copy of the collected metrics
type Snapshot struct {
	Uptime     time.Duration      `json:"uptime_ns"`
	Runs       int64              `json:"runs"`
	FailedRuns int64              `json:"failed_runs"`
	Tokens     int64              `json:"tokens"`
	Operations []OperationMetrics `json:"operations"`
}

// Snapshot returns the current metrics with operations in pipeline order.
// Operations never tracked are left out.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		Uptime:     c.now().Sub(c.started),
		Runs:       c.runs.Get(),
		FailedRuns: c.failed.Get(),
		Tokens:     c.tokens.Get(),
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, op := range Operations {
		if m := c.timers[op].Metrics(op); m.Count > 0 {
			s.Operations = append(s.Operations, m)
		}
	}
	return s
}
