package tool

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusRented      Status = "rented"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusRented:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusAvailable, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
