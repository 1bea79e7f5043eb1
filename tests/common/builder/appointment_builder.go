//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	CustomerName    string
	ServiceID       uuid.UUID
	ServiceName     string
	DurationMinutes int
	Price           int64
	Date            schedule.Date
	Slot            string
	Status          appointment.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	created := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		CustomerName:    "Asha Customer",
		ServiceID:       uuid.New(),
		ServiceName:     "Haircut",
		DurationMinutes: 60,
		Price:           50000,
		Date:            schedule.NewDate(2025, time.June, 4),
		Slot:            "10:00 AM - 11:00 AM",
		Status:          appointment.StatusPending,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) Snapshot() service.Snapshot {
	return service.Snapshot{
		ID:       b.ServiceID,
		Name:     b.ServiceName,
		Duration: time.Duration(b.DurationMinutes) * time.Minute,
		Price:    b.Price,
	}
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	slot, err := schedule.ParseTimeRange(b.Slot)
	if err != nil {
		return nil, err
	}
	status, err := appointment.NewStatus(string(b.Status))
	if err != nil {
		return nil, err
	}

	var cancellation *appointment.Cancellation
	if status == appointment.StatusCancelled {
		cancellation = &appointment.Cancellation{
			Reason: "Change of plans",
			By:     appointment.CancelledByCustomer,
			ByID:   b.CustomerID,
			ByName: b.CustomerName,
			At:     b.UpdatedAt,
		}
	}

	return appointment.Reconstruct(
		b.ID, b.CustomerID, b.CustomerName,
		b.Snapshot(), b.Date, slot, status,
		cancellation, nil, nil,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	v := &queries.AppointmentView{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		Price:           b.Price,
		DurationMinutes: b.DurationMinutes,
		Date:            b.Date.String(),
		Slot:            b.Slot,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Status == appointment.StatusCancelled {
		reason, by, byName, at := "Change of plans", string(appointment.CancelledByCustomer), b.CustomerName, b.UpdatedAt
		v.CancellationReason = &reason
		v.CancelledBy = &by
		v.CancelledByName = &byName
		v.CancelledAt = &at
	}
	return v
}
