package application

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// PingInteractor handles the ping use case.
type PingInteractor struct{}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{}
}

// Execute builds the announcement for a ping by username in channelID.
func (p *PingInteractor) Execute(username string, channelID snowflake.ID) *domain.PingAnnouncement {
	return domain.NewPingAnnouncement(username, channelID)
}
