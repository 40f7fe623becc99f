package appointment

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the appointment still occupies its time slot.
// Only PENDING and CONFIRMED appointments block other bookings.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
