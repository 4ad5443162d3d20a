package order

import (
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// Role is the party an agreement is recorded for. The numeric values are part
// of the submission interface: 0 is the carrier, 1 is the sender.
type Role int

const (
	Carrier Role = 0
	Sender  Role = 1
)

// RoleFromInt converts a submitted role argument.
func RoleFromInt(v int) (Role, error) {
	r := Role(v)
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

func (r Role) Validate() error {
	if r != Carrier && r != Sender {
		return errs.NewValueIsOutOfRangeError("role", int(r), int(Carrier), int(Sender))
	}
	return nil
}

func (r Role) String() string {
	switch r {
	case Carrier:
		return "carrier"
	case Sender:
		return "sender"
	default:
		return "unknown"
	}
}
