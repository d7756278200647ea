package store

import (
	"context"
	"sync"
	"time"
)

// Record is one commanded angle as it was applied to the servo.
type Record struct {
	ID    int64
	Angle int
	Pwm   int
	At    time.Time
}

// CommandLog persists applied servo commands.
type CommandLog interface {
	// Append stores one record. The ID field is ignored on input.
	Append(ctx context.Context, rec Record) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// Memory is a CommandLog kept in process memory, used by tests and by
// runs started with logging disabled.
type Memory struct {
	mu   sync.Mutex
	recs []Record
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = int64(len(m.recs) + 1)
	m.recs = append(m.recs, rec)
	return nil
}

func (m *Memory) Recent(_ context.Context, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.recs)
	if limit > n {
		limit = n
	}
	out := make([]Record, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, m.recs[i])
	}
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
