package cache

import (
	"context"
	"sync"
	"time"
)

// WindowCounter counts hits per key in fixed windows.
type WindowCounter interface {
	// Hit records one hit for key and returns the hit count of the current window
	// together with the time the window resets.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type windowEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryWindowCounter is a process-local WindowCounter.
type MemoryWindowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time

	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryWindowCounter creates a counter and starts a goroutine that drops
// expired windows every cleanupInterval.
func NewMemoryWindowCounter(cleanupInterval time.Duration) *MemoryWindowCounter {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &MemoryWindowCounter{
		entries:  make(map[string]*windowEntry),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop(cleanupInterval)

	return c
}

// Hit implements WindowCounter.
func (c *MemoryWindowCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(window)}
		c.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt, nil
}

// Len returns the number of tracked keys.
func (c *MemoryWindowCounter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryWindowCounter) cleanupLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopChan:
			return
		}
	}
}

func (c *MemoryWindowCounter) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.resetAt) {
			delete(c.entries, key)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *MemoryWindowCounter) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}
