package infrastructure

import (
	"github.com/sglre6355/dispatchbot/internal/framework"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application/ports"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// UsageCounterAdapter implements ports.UsageSource on the dispatcher's counter.
type UsageCounterAdapter struct {
	counter *framework.UsageCounter
}

// NewUsageCounterAdapter creates a new UsageCounterAdapter.
func NewUsageCounterAdapter(counter *framework.UsageCounter) *UsageCounterAdapter {
	return &UsageCounterAdapter{counter: counter}
}

// Usage returns the counter snapshot as domain rows.
func (a *UsageCounterAdapter) Usage() []domain.CommandUsage {
	snapshot := a.counter.Snapshot()
	rows := make([]domain.CommandUsage, len(snapshot))
	for i, u := range snapshot {
		rows[i] = domain.CommandUsage{Name: u.Name, Count: u.Count}
	}
	return rows
}

// Ensure UsageCounterAdapter implements ports.UsageSource.
var _ ports.UsageSource = (*UsageCounterAdapter)(nil)
