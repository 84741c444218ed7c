package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// ChannelEditor defines the interface for changing channel settings.
type ChannelEditor interface {
	// SetSlowmode sets the per-user message interval of a channel in seconds.
	SetSlowmode(ctx context.Context, channelID snowflake.ID, seconds int) error
}
