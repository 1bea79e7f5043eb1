package shared

import "salon-booking/internal/pkg/errs"

var (
	ErrAppointmentNotFound  = errs.Kind("appointment not found", errs.ErrNotFound)
	ErrServiceNotFound      = errs.Kind("service not found", errs.ErrNotFound)
	ErrUserNotFound         = errs.Kind("user not found", errs.ErrNotFound)
	ErrNotificationNotFound = errs.Kind("notification not found", errs.ErrNotFound)
)
