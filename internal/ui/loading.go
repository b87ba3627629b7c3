package ui

import (
	"sync"

	"lottery-miniapp-client/internal/messages"
)

// LoadingOverlay is mounted on first use and only toggled afterwards.
type LoadingOverlay struct {
	mu      sync.Mutex
	surface Surface
	mounted bool
	holders int
	view    LoadingView
}

func NewLoadingOverlay(surface Surface) *LoadingOverlay {
	return &LoadingOverlay{surface: surface}
}

func (l *LoadingOverlay) Show(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showLocked(message)
}

func (l *LoadingOverlay) Hide() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hideLocked()
}

// Acquire shows the overlay and returns its release. The overlay stays
// visible until every holder has released; releasing twice is a no-op.
func (l *LoadingOverlay) Acquire(message string) func() {
	l.mu.Lock()
	l.holders++
	l.showLocked(message)
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()

			l.holders--
			if l.holders <= 0 {
				l.holders = 0
				l.hideLocked()
			}
		})
	}
}

func (l *LoadingOverlay) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounted && l.view.Visible
}

func (l *LoadingOverlay) showLocked(message string) {
	if message == "" {
		message = messages.Text(messages.LoadingDefault)
	}
	l.view = LoadingView{Message: message, Visible: true}

	if !l.mounted {
		l.mounted = true
		l.surface.MountLoading(l.view)
		return
	}
	l.surface.UpdateLoading(l.view)
}

func (l *LoadingOverlay) hideLocked() {
	if !l.mounted || !l.view.Visible {
		return
	}
	l.view.Visible = false
	l.surface.UpdateLoading(l.view)
}
