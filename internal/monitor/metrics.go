package monitor

import (
	"math"
	"sync/atomic"
	"time"
)

// OperationType names a timed step of an analysis run
type OperationType string

const (
	OperationRead    OperationType = "read"
	OperationResolve OperationType = "resolve"
	OperationAnalyze OperationType = "analyze"
	OperationFormat  OperationType = "format"
	OperationWrite   OperationType = "write"
)

// Operations lists every operation in pipeline order
var Operations = []OperationType{
	OperationRead, OperationResolve, OperationAnalyze, OperationFormat, OperationWrite,
}

// OperationMetrics holds the timings of one operation
type OperationMetrics struct {
	Operation  OperationType `json:"operation"`
	Count      int64         `json:"count"`
	ErrorCount int64         `json:"error_count"`
	TotalTime  time.Duration `json:"total_time_ns"`
	MinTime    time.Duration `json:"min_time_ns"`
	MaxTime    time.Duration `json:"max_time_ns"`
	AvgTime    time.Duration `json:"avg_time_ns"`
}

// Counter is a thread-safe counter
type Counter struct {
	value int64
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Add adds n to the counter
func (c *Counter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

const noMin = math.MaxInt64

// Timer is a thread-safe duration recorder
type Timer struct {
	count  int64
	errors int64
	total  int64
	min    int64
	max    int64
}

// NewTimer creates an empty timer
func NewTimer() *Timer {
	return &Timer{min: noMin}
}

// Record adds one measurement; failed marks it as an error
func (t *Timer) Record(d time.Duration, failed bool) {
	nanos := d.Nanoseconds()

	atomic.AddInt64(&t.count, 1)
	atomic.AddInt64(&t.total, nanos)
	if failed {
		atomic.AddInt64(&t.errors, 1)
	}

	for {
		current := atomic.LoadInt64(&t.min)
		if nanos >= current || atomic.CompareAndSwapInt64(&t.min, current, nanos) {
			break
		}
	}
	for {
		current := atomic.LoadInt64(&t.max)
		if nanos <= current || atomic.CompareAndSwapInt64(&t.max, current, nanos) {
			break
		}
	}
}

// Metrics returns the recorded timings under op
func (t *Timer) Metrics(op OperationType) OperationMetrics {
	m := OperationMetrics{
		Operation:  op,
		Count:      atomic.LoadInt64(&t.count),
		ErrorCount: atomic.LoadInt64(&t.errors),
		TotalTime:  time.Duration(atomic.LoadInt64(&t.total)),
		MaxTime:    time.Duration(atomic.LoadInt64(&t.max)),
	}
	if minTime := atomic.LoadInt64(&t.min); minTime != noMin {
		m.MinTime = time.Duration(minTime)
	}
	if m.Count > 0 {
		m.AvgTime = m.TotalTime / time.Duration(m.Count)
	}
	return m
}
