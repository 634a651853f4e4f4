package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNoteLength         = 1000
	MaxCancelReasonLength = 500
)

var (
	ErrInvalidSchedule = errors.New("invalid schedule")
	ErrInvalidMoney    = errors.New("price must be a positive amount in a valid currency")
	ErrNoteTooLong     = errors.New("note is too long")
	ErrReasonTooLong   = errors.New("cancel reason is too long")
	ErrInvalidCurrency = errors.New("currency must be an ISO-4217 code")
)

// Schedule is the agreed consultation slot.
type Schedule struct {
	start           time.Time
	durationMinutes int
}

func NewSchedule(start time.Time, durationMinutes int) (Schedule, error) {
	if start.IsZero() || durationMinutes <= 0 {
		return Schedule{}, ErrInvalidSchedule
	}
	return Schedule{start: start.UTC(), durationMinutes: durationMinutes}, nil
}

func (s Schedule) Start() time.Time {
	return s.start
}

func (s Schedule) End() time.Time {
	return s.start.Add(s.Duration())
}

func (s Schedule) DurationMinutes() int {
	return s.durationMinutes
}

func (s Schedule) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

// Money is an amount in minor units of currency.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrInvalidMoney
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{cents: cents, currency: cur}, nil
}

func normalizeCurrency(s string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(s))
	if len(cur) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range cur {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return cur, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Currency() string {
	return m.currency
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

type CancelReason struct {
	value string
}

// NewCancelReason falls back to the given default when the caller gave no reason.
func NewCancelReason(value, fallback string) (CancelReason, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if utf8.RuneCountInString(value) > MaxCancelReasonLength {
		return CancelReason{}, ErrReasonTooLong
	}
	return CancelReason{value: value}, nil
}

func (r CancelReason) String() string {
	return r.value
}
