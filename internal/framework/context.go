package framework

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// Message is an inbound chat message as delivered by the gateway.
type Message struct {
	ID          snowflake.ID
	ChannelID   snowflake.ID
	GuildID     snowflake.ID // Zero for direct messages
	AuthorID    snowflake.ID
	AuthorName  string
	AuthorIsBot bool
	Content     string
}

// InGuild reports whether the message was sent in a guild channel.
func (m Message) InGuild() bool {
	return m.GuildID != 0
}

// Sender delivers outbound messages.
type Sender interface {
	// Send posts content to a channel.
	Send(ctx context.Context, channelID snowflake.ID, content string) error

	// SendDirect posts content to a user's direct-message channel.
	SendDirect(ctx context.Context, userID snowflake.ID, content string) error
}

// DispatchContext is the per-message state threaded through resolution,
// checks and execution. It is never shared between messages.
type DispatchContext struct {
	Message Message
	Group   *Group
	Command *Command
	Args    *Args

	sender Sender
}

// NewDispatchContext creates a context for msg that replies through sender.
func NewDispatchContext(msg Message, sender Sender) *DispatchContext {
	return &DispatchContext{Message: msg, sender: sender}
}

// CommandName returns the resolved command name, or "" before resolution.
func (c *DispatchContext) CommandName() string {
	if c.Command == nil {
		return ""
	}
	return c.Command.Name
}

// Reply sends content to the channel the message came from.
func (c *DispatchContext) Reply(ctx context.Context, content string) error {
	if c.sender == nil {
		return ErrNoSender
	}
	return c.sender.Send(ctx, c.Message.ChannelID, content)
}

// DirectMessage sends content privately to the message author.
func (c *DispatchContext) DirectMessage(ctx context.Context, content string) error {
	if c.sender == nil {
		return ErrNoSender
	}
	return c.sender.SendDirect(ctx, c.Message.AuthorID, content)
}
