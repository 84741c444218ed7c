package ports

import "github.com/sglre6355/dispatchbot/internal/modules/general/domain"

// UsageSource provides the command usage recorded so far.
type UsageSource interface {
	// Usage returns usage rows in first-use order.
	Usage() []domain.CommandUsage
}
