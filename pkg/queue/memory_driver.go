package queue

import "context"

// MemoryDriver is an in-process channel-backed queue. It is the default
// driver and is also what the tests use.
type MemoryDriver struct {
	ch chan []byte
}

// NewMemoryDriver returns a memory driver with a buffer of 1000 jobs.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{ch: make(chan []byte, 1000)}
}

func (d *MemoryDriver) Push(payload []byte) error {
	d.ch <- payload
	return nil
}

func (d *MemoryDriver) Pop(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case payload := <-d.ch:
		return payload, nil
	}
}
