package infrastructure

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application/ports"
)

// channelEditSession is the subset of *discordgo.Session used for channel edits.
type channelEditSession interface {
	ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// DiscordChannelEditor implements ports.ChannelEditor using the Discord REST API.
type DiscordChannelEditor struct {
	session channelEditSession
}

// NewDiscordChannelEditor creates a new DiscordChannelEditor.
func NewDiscordChannelEditor(session *discordgo.Session) *DiscordChannelEditor {
	return &DiscordChannelEditor{session: session}
}

// SetSlowmode sets the channel's per-user rate limit.
func (e *DiscordChannelEditor) SetSlowmode(ctx context.Context, channelID snowflake.ID, seconds int) error {
	_, err := e.session.ChannelEdit(
		channelID.String(),
		&discordgo.ChannelEdit{RateLimitPerUser: &seconds},
		discordgo.WithContext(ctx),
	)
	return err
}

// Ensure DiscordChannelEditor implements ports.ChannelEditor.
var _ ports.ChannelEditor = (*DiscordChannelEditor)(nil)
