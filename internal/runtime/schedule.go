package runtime

import (
	"fmt"
	"time"

	"github.com/aretw0/pillars/pkg/domain"
)

// Reference animation timing.
const (
	DefaultTicks     = 18
	DefaultBaseDelay = 80 * time.Millisecond
	DefaultStepDelay = 4 * time.Millisecond
)

// Schedule describes the accelerating tick sequence of one roll.
type Schedule struct {
	// Ticks is the number of cosmetic faces shown before settling.
	Ticks int

	// BaseDelay is the wait before the first tick.
	BaseDelay time.Duration

	// StepDelay is added to the wait for every tick already fired, slowing the die down.
	StepDelay time.Duration
}

// DefaultSchedule returns the reference 18-tick schedule.
func DefaultSchedule() Schedule {
	return Schedule{
		Ticks:     DefaultTicks,
		BaseDelay: DefaultBaseDelay,
		StepDelay: DefaultStepDelay,
	}
}

// Delay returns the wait preceding the tick after n ticks have fired.
func (s Schedule) Delay(n int) time.Duration {
	return s.BaseDelay + time.Duration(n)*s.StepDelay
}

// Total returns the full duration of a roll.
func (s Schedule) Total() time.Duration {
	var total time.Duration
	for n := 0; n < s.Ticks; n++ {
		total += s.Delay(n)
	}
	return total
}

// Validate checks that the schedule can animate a roll.
func (s Schedule) Validate() error {
	if s.Ticks < 1 {
		return fmt.Errorf("%w: ticks must be at least 1, got %d", domain.ErrInvalidSchedule, s.Ticks)
	}
	if s.BaseDelay <= 0 {
		return fmt.Errorf("%w: base delay must be positive, got %s", domain.ErrInvalidSchedule, s.BaseDelay)
	}
	if s.StepDelay < 0 {
		return fmt.Errorf("%w: step delay can't be negative, got %s", domain.ErrInvalidSchedule, s.StepDelay)
	}
	return nil
}
