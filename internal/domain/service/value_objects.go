package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"salon-booking/internal/pkg/errs"
)

var (
	ErrInvalidName     = errs.Kind("service name must be 1-100 characters", errs.ErrInvalidInput)
	ErrInvalidDuration = errs.Kind("service duration must be between 5 and 720 minutes", errs.ErrInvalidInput)
	ErrNegativePrice   = errs.Kind("price cannot be negative", errs.ErrInvalidInput)
)

// DefaultDuration applies when a service is created without a duration.
const DefaultDuration = 60 * time.Minute

const (
	minDurationMinutes = 5
	maxDurationMinutes = 12 * 60
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Duration is a whole number of minutes.
type Duration struct {
	minutes int
}

// NewDuration treats zero as "not given" and falls back to DefaultDuration.
func NewDuration(minutes int) (Duration, error) {
	if minutes == 0 {
		return Duration{minutes: int(DefaultDuration / time.Minute)}, nil
	}
	if minutes < minDurationMinutes || minutes > maxDurationMinutes {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int         { return d.minutes }
func (d Duration) Value() time.Duration { return time.Duration(d.minutes) * time.Minute }

// Money is an amount in minor units of the salon's currency (paise for INR).
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 { return m.amount }
