package adoptions

import "fmt"

// Status define los estados de una solicitud de adopción.
// @Enum Pending, Approved, Rejected, Completed
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

// ParseStatus convierte el valor crudo del request a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown adoption status %q", s)
}
