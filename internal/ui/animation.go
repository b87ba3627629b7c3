package ui

import (
	"math/rand"
	"sync"
	"time"

	"lottery-miniapp-client/internal/models"
)

const DefaultRollInterval = 100 * time.Millisecond

// DrawAnimation rolls random values through the ball slots while a draw is
// in flight. It is purely cosmetic.
type DrawAnimation struct {
	mu       sync.Mutex
	surface  Surface
	slots    int
	interval time.Duration
	values   []int
	stop     chan struct{}
	done     chan struct{}
}

func NewDrawAnimation(surface Surface, slots int, interval time.Duration) *DrawAnimation {
	if slots <= 0 {
		slots = models.NumbersPerTicket
	}
	if interval <= 0 {
		interval = DefaultRollInterval
	}
	return &DrawAnimation{
		surface:  surface,
		slots:    slots,
		interval: interval,
	}
}

func (a *DrawAnimation) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stop != nil {
		return
	}

	a.rollLocked()
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	go a.run(a.stop, a.done)
}

// Stop freezes the balls on their last values. It is safe to call when the
// animation is not running.
func (a *DrawAnimation) Stop() {
	a.mu.Lock()
	if a.stop == nil {
		a.mu.Unlock()
		return
	}
	close(a.stop)
	done := a.done
	a.stop, a.done = nil, nil
	a.surface.SetBalls(BallsView{Values: append([]int(nil), a.values...), Rolling: false})
	a.mu.Unlock()

	<-done
}

func (a *DrawAnimation) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stop != nil
}

func (a *DrawAnimation) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.mu.Lock()
			if a.stop != stop {
				a.mu.Unlock()
				return
			}
			a.rollLocked()
			a.mu.Unlock()

		case <-stop:
			return
		}
	}
}

func (a *DrawAnimation) rollLocked() {
	values := make([]int, a.slots)
	for i := range values {
		values[i] = rand.Intn(models.MaxNumber) + models.MinNumber
	}
	a.values = values
	a.surface.SetBalls(BallsView{Values: append([]int(nil), values...), Rolling: true})
}
