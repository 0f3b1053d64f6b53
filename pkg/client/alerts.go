package client

import (
	"sync"
	"time"
)

// Clock abstracts time so alert expiry can run on virtual time in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// AlertLevel classifies a transient user-facing alert.
type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertSuccess AlertLevel = "success"
	AlertError   AlertLevel = "error"
)

// Alert is one dismissible notification with a scheduled expiry.
type Alert struct {
	ID        int64
	Level     AlertLevel
	Message   string
	ExpiresAt time.Time
}

// AlertCenter holds the active alerts. Expired entries drop out on the next
// read instead of firing callbacks, so consumers poll Active whenever they
// render.
type AlertCenter struct {
	mu     sync.Mutex
	clock  Clock
	ttl    time.Duration
	nextID int64
	alerts []Alert
}

// AlertOption configures optional alert center behavior.
type AlertOption func(*AlertCenter)

// WithClock injects a clock, usually a fake one in tests.
func WithClock(clock Clock) AlertOption {
	return func(c *AlertCenter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewAlertCenter builds an alert center whose entries live for ttl.
func NewAlertCenter(ttl time.Duration, opts ...AlertOption) *AlertCenter {
	c := &AlertCenter{
		clock: systemClock{},
		ttl:   ttl,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Push adds an alert and returns it with its assigned ID and expiry.
func (c *AlertCenter) Push(level AlertLevel, message string) Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	alert := Alert{
		ID:        c.nextID,
		Level:     level,
		Message:   message,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	}
	c.alerts = append(c.alerts, alert)
	return alert
}

// Active returns the alerts that have not yet expired, pruning the rest.
func (c *AlertCenter) Active() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	kept := c.alerts[:0]
	for _, alert := range c.alerts {
		if alert.ExpiresAt.After(now) {
			kept = append(kept, alert)
		}
	}
	c.alerts = kept

	out := make([]Alert, len(kept))
	copy(out, kept)
	return out
}

// Dismiss drops one alert before its expiry. Unknown IDs are a no-op.
func (c *AlertCenter) Dismiss(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, alert := range c.alerts {
		if alert.ID == id {
			c.alerts = append(c.alerts[:i], c.alerts[i+1:]...)
			return
		}
	}
}
