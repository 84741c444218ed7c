package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/framework"
	"golang.org/x/time/rate"
)

// channelMessenger is the subset of *discordgo.Session used for sending.
type channelMessenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// DiscordSender implements framework.Sender on a Discord session, throttling
// outbound messages with a token bucket.
type DiscordSender struct {
	messenger channelMessenger
	limiter   *rate.Limiter
}

// NewDiscordSender creates a DiscordSender allowing perSecond messages with
// the given burst.
func NewDiscordSender(s *discordgo.Session, perSecond float64, burst int) *DiscordSender {
	return newDiscordSender(s, rate.NewLimiter(rate.Limit(perSecond), burst))
}

func newDiscordSender(m channelMessenger, limiter *rate.Limiter) *DiscordSender {
	return &DiscordSender{messenger: m, limiter: limiter}
}

// Send posts content to a channel.
func (d *DiscordSender) Send(ctx context.Context, channelID snowflake.ID, content string) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for send slot: %w", err)
	}
	if _, err := d.messenger.ChannelMessageSend(channelID.String(), content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// SendDirect opens a direct-message channel with the user and posts content to it.
func (d *DiscordSender) SendDirect(ctx context.Context, userID snowflake.ID, content string) error {
	channel, err := d.messenger.UserChannelCreate(userID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct message channel with %s: %w", userID, err)
	}
	channelID, err := snowflake.Parse(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to parse channel ID %q: %w", channel.ID, err)
	}
	return d.Send(ctx, channelID, content)
}

// Ensure DiscordSender implements framework.Sender.
var _ framework.Sender = (*DiscordSender)(nil)
