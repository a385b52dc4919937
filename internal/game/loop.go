package game

import (
	"sync"
	"time"
)

// FrameChanSize is the buffer of each subscriber's frame channel.
const FrameChanSize = 2

// Frame is one tick of the redraw loop.
type Frame struct {
	Tick uint64
	At   time.Time
}

// FrameChan is the per-subscriber channel that receives frames.
type FrameChan chan Frame

// Loop ticks at a fixed rate and fans each frame out to subscribers.
// It carries no scene state; subscribers redraw in full on every frame.
type Loop struct {
	interval  time.Duration
	tickCount uint64

	mu     sync.RWMutex
	subs   map[int]FrameChan
	nextID int

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewLoop creates a loop running at fps frames per second.
func NewLoop(fps int) *Loop {
	return &Loop{
		interval: FrameInterval(fps),
		subs:     make(map[int]FrameChan),
		stopCh:   make(chan struct{}),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration { return l.interval }

// Subscribe registers a new frame receiver.
func (l *Loop) Subscribe() (int, <-chan Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	ch := make(FrameChan, FrameChanSize)
	l.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a receiver and closes its channel.
func (l *Loop) Unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ch, ok := l.subs[id]; ok {
		close(ch)
		delete(l.subs, id)
	}
}

// Subscribers returns the number of registered receivers.
func (l *Loop) Subscribers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}

// Run starts the loop. Blocks until Stop is called, then closes every
// subscriber channel.
func (l *Loop) Run() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			l.closeAll()
			return
		case now := <-ticker.C:
			l.tick(now)
		}
	}
}

// Stop shuts down the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

func (l *Loop) tick(now time.Time) {
	l.tickCount++
	frame := Frame{Tick: l.tickCount, At: now}

	l.mu.RLock()
	defer l.mu.RUnlock()

	// Non-blocking send to each subscriber
	for _, ch := range l.subs {
		select {
		case ch <- frame:
		default:
			// Drop frame for slow subscriber
		}
	}
}

func (l *Loop) closeAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, ch := range l.subs {
		close(ch)
		delete(l.subs, id)
	}
}
