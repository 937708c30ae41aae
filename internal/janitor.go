package internal

import (
	"sync"
	"time"
)

// Sweeper is what a Janitor runs on every tick.
type Sweeper interface {
	Sweep()
}

type Janitor struct {
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewJanitor(interval time.Duration) *Janitor {
	var j = &Janitor{}
	j.interval = interval
	j.stop = make(chan struct{})
	j.done = make(chan struct{})
	return j
}

// Run blocks until Close is called. It returns at once when the interval is
// not positive.
func (this *Janitor) Run(s Sweeper) {
	defer close(this.done)

	if this.interval <= 0 {
		return
	}

	var ticker = time.NewTicker(this.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-this.stop:
			return
		}
	}
}

// Close stops Run and waits for it to return. Run must have been started.
// Safe to call more than once.
func (this *Janitor) Close() {
	this.once.Do(func() {
		close(this.stop)
	})
	<-this.done
}
