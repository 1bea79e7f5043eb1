package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// HoldsSlot is true for the statuses that keep a (date, slot) pair exclusive.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActiveStatuses are the statuses for which HoldsSlot is true.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// CancelledBy records which side of the booking cancelled it.
type CancelledBy string

const (
	CancelledByCustomer CancelledBy = "customer"
	CancelledByOwner    CancelledBy = "owner" // salon side: staff, admin or owner
)

func (c CancelledBy) String() string {
	return string(c)
}
