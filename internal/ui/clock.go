package ui

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

const DateTimeLayout = "2006/01/02 15:04:05"

// Clock refreshes the date-time display every second until stopped.
type Clock struct {
	cron    *cron.Cron
	surface Surface
	now     func() time.Time
}

func NewClock(surface Surface) *Clock {
	return &Clock{
		cron:    cron.New(),
		surface: surface,
		now:     time.Now,
	}
}

func (c *Clock) Start() error {
	c.Tick()
	if _, err := c.cron.AddFunc("@every 1s", c.Tick); err != nil {
		return err
	}
	c.cron.Start()
	return nil
}

// Stop cancels the refresh and waits for a running tick to finish.
func (c *Clock) Stop() context.Context {
	return c.cron.Stop()
}

func (c *Clock) Tick() {
	c.surface.SetDateTime(c.now().Format(DateTimeLayout))
}
