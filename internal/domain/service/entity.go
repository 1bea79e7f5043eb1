package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is a bookable catalog entry. Appointments copy what they need at booking
// time, so edits here never reach existing appointments.
type Service struct {
	id          uuid.UUID
	name        Name
	duration    Duration
	price       Money
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name Name, duration Duration, price Money, description string, now time.Time) *Service {
	return &Service{
		id:          uuid.New(),
		name:        name,
		duration:    duration,
		price:       price,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}
}

func Reconstruct(id uuid.UUID, name string, durationMinutes int, price int64, description string, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:          id,
		name:        Name{value: name},
		duration:    Duration{minutes: durationMinutes},
		price:       Money{amount: price},
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() Name           { return s.name }
func (s *Service) Duration() Duration   { return s.duration }
func (s *Service) Price() Money         { return s.price }
func (s *Service) Description() string  { return s.description }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

func (s *Service) Update(name Name, duration Duration, price Money, description string, now time.Time) {
	s.name = name
	s.duration = duration
	s.price = price
	s.description = strings.TrimSpace(description)
	s.updatedAt = now
}

// Snapshot is the copy an appointment keeps of the service it was booked for.
type Snapshot struct {
	ID       uuid.UUID
	Name     string
	Duration time.Duration
	Price    int64
}

func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		ID:       s.id,
		Name:     s.name.String(),
		Duration: s.duration.Value(),
		Price:    s.price.Amount(),
	}
}
