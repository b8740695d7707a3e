package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base for every unknown-reference failure; callers
// branch on it with errors.Is and map it to a 404.
var ErrNotFound = errors.New("not found")

var (
	ErrCustomerNotFound   = fmt.Errorf("customer: %w", ErrNotFound)
	ErrJobNotFound        = fmt.Errorf("job: %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket: %w", ErrNotFound)
	ErrTechnicianNotFound = fmt.Errorf("technician: %w", ErrNotFound)
)
