package ui

import (
	"sync"
	"time"

	"lottery-miniapp-client/internal/models"
)

const (
	DefaultNotificationDwell = 3 * time.Second
	DefaultNotificationExit  = 300 * time.Millisecond
)

// Notifier displays one transient notification at a time. A new
// notification evicts the current one immediately, cancelling its timers.
type Notifier struct {
	mu        sync.Mutex
	surface   Surface
	scheduler Scheduler
	dwell     time.Duration
	exit      time.Duration
	current   *activeNotification
	closed    bool
}

type activeNotification struct {
	view  NotificationView
	timer Timer
}

func NewNotifier(surface Surface, scheduler Scheduler, dwell, exit time.Duration) *Notifier {
	if scheduler == nil {
		scheduler = RealScheduler
	}
	if dwell <= 0 {
		dwell = DefaultNotificationDwell
	}
	if exit <= 0 {
		exit = DefaultNotificationExit
	}
	return &Notifier{
		surface:   surface,
		scheduler: scheduler,
		dwell:     dwell,
		exit:      exit,
	}
}

func (n *Notifier) Success(message string) string {
	return n.Show(message, models.NotificationSuccess)
}

func (n *Notifier) Error(message string) string {
	return n.Show(message, models.NotificationError)
}

// Show renders message and returns the notification ID.
func (n *Notifier) Show(message string, kind models.NotificationKind) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ""
	}
	n.evictLocked()

	active := &activeNotification{
		view: NotificationView{
			ID:      models.GenerateNotificationID(),
			Message: message,
			Kind:    kind,
			Phase:   models.PhaseEntering,
		},
	}
	n.current = active
	n.surface.ShowNotification(active.view)
	active.timer = n.scheduler.AfterFunc(n.dwell, func() { n.beginExit(active) })

	return active.view.ID
}

// Current returns the notification on screen, if any.
func (n *Notifier) Current() (NotificationView, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return NotificationView{}, false
	}
	return n.current.view, true
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil {
		n.current.timer.Stop()
		n.current = nil
	}
	n.closed = true
}

func (n *Notifier) beginExit(active *activeNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// evicted while the timer was firing
	if n.current != active {
		return
	}

	active.view.Phase = models.PhaseExiting
	n.surface.UpdateNotification(active.view)
	active.timer = n.scheduler.AfterFunc(n.exit, func() { n.finish(active) })
}

func (n *Notifier) finish(active *activeNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != active {
		return
	}

	n.surface.RemoveNotification(active.view.ID)
	n.current = nil
}

func (n *Notifier) evictLocked() {
	if n.current == nil {
		return
	}
	n.current.timer.Stop()
	n.surface.RemoveNotification(n.current.view.ID)
	n.current = nil
}
