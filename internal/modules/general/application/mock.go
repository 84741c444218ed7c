package application

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application/ports"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// MockUsageSource is a test double for ports.UsageSource.
type MockUsageSource struct {
	Rows []domain.CommandUsage
}

// Usage returns the configured rows.
func (m *MockUsageSource) Usage() []domain.CommandUsage {
	return m.Rows
}

// MockChannelEditor is a test double for ports.ChannelEditor.
type MockChannelEditor struct {
	ChannelID snowflake.ID
	Seconds   int
	Calls     int
	Err       error
}

// SetSlowmode records the call.
func (m *MockChannelEditor) SetSlowmode(_ context.Context, channelID snowflake.ID, seconds int) error {
	m.Calls++
	m.ChannelID = channelID
	m.Seconds = seconds
	return m.Err
}

var (
	_ ports.UsageSource   = (*MockUsageSource)(nil)
	_ ports.ChannelEditor = (*MockChannelEditor)(nil)
)
