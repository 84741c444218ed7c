package application

import (
	"github.com/sglre6355/dispatchbot/internal/modules/general/application/ports"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// UsageInteractor reports how often each command has been used.
type UsageInteractor struct {
	source ports.UsageSource
}

// NewUsageInteractor creates a new UsageInteractor.
func NewUsageInteractor(source ports.UsageSource) *UsageInteractor {
	return &UsageInteractor{source: source}
}

// Execute renders the current usage report.
func (u *UsageInteractor) Execute() string {
	return domain.UsageReport(u.source.Usage())
}
