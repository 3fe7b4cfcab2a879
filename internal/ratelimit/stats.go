package ratelimit

import (
	"context"
	"sync"
	"time"
)

// StatsEvent records one limiter decision.
type StatsEvent struct {
	Key     string
	Allowed bool

	Method string
	Path   string

	At time.Time
}

// StatsStore persists limiter decision counters. Recording is
// best-effort; the middleware treats errors as non-fatal.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

type Counters struct {
	Allowed int64
	Denied  int64
}

// MemoryStats keeps counters in memory, used when no Redis is configured.
type MemoryStats struct {
	mu      sync.Mutex
	total   Counters
	byRoute map[string]Counters
	byKey   map[string]Counters
}

func NewMemoryStats() *MemoryStats {
	return &MemoryStats{
		byRoute: make(map[string]Counters),
		byKey:   make(map[string]Counters),
	}
}

func (s *MemoryStats) Record(_ context.Context, ev StatsEvent) error {
	route := ev.Method + " " + ev.Path

	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.byRoute[route]
	k := s.byKey[ev.Key]
	if ev.Allowed {
		s.total.Allowed++
		r.Allowed++
		k.Allowed++
	} else {
		s.total.Denied++
		r.Denied++
		k.Denied++
	}
	s.byRoute[route] = r
	s.byKey[ev.Key] = k

	return nil
}

func (s *MemoryStats) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStats) ByRoute() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byRoute))
	for k, v := range s.byRoute {
		out[k] = v
	}
	return out
}

func (s *MemoryStats) ByKey() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byKey))
	for k, v := range s.byKey {
		out[k] = v
	}
	return out
}
