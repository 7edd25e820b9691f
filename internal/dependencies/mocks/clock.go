package mocks

import (
	"time"

	"github.com/mcoot/hangbot/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time

	// Step is added to CurrentTime after every Now call, so code that
	// measures elapsed time sees the clock move
	Step time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time, then advances by Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Since returns the mocked time elapsed since t
func (c *MockClock) Since(t time.Time) time.Duration {
	return c.CurrentTime.Sub(t)
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
