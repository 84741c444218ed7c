package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sglre6355/dispatchbot/internal/framework"
)

// installHooks wires the default lifecycle hooks onto d.
func installHooks(d *framework.Dispatcher) {
	d.Before(beforeCommand)
	d.After(afterCommand)
	d.UnrecognisedCommand(unrecognisedCommand)
	d.NormalMessage(normalMessage)
	d.OnDispatchError(dispatchError)
}

func beforeCommand(_ context.Context, c *framework.DispatchContext) bool {
	slog.Info("running command",
		"command", c.CommandName(),
		"group", c.Group.Name,
		"user_id", c.Message.AuthorID,
		"username", c.Message.AuthorName,
	)
	return true
}

func afterCommand(_ context.Context, c *framework.DispatchContext, err error) {
	if err != nil {
		slog.Error("failed to run command", "command", c.CommandName(), "error", err)
		return
	}
	slog.Debug("processed command", "command", c.CommandName())
}

func unrecognisedCommand(_ context.Context, c *framework.DispatchContext, token string) {
	slog.Info("found no command", "command", token, "user_id", c.Message.AuthorID)
}

func normalMessage(_ context.Context, c *framework.DispatchContext) {
	slog.Debug("processed non-command message",
		"message_id", c.Message.ID,
		"channel_id", c.Message.ChannelID,
	)
}

// dispatchError tells the invoker about rate limits and about check failures
// that carry a message. Other denials are only logged.
func dispatchError(ctx context.Context, c *framework.DispatchContext, err error) {
	var (
		rlErr    *framework.RatelimitedError
		checkErr *framework.CheckFailedError
		notice   string
	)
	switch {
	case errors.As(err, &rlErr):
		slog.Info("rate limited command",
			"command", c.CommandName(),
			"user_id", c.Message.AuthorID,
			"retry_after", rlErr.RetryAfter,
		)
		notice = fmt.Sprintf("Try this again in %d seconds.", rlErr.Seconds())
	case errors.As(err, &checkErr):
		slog.Info("denied command",
			"command", c.CommandName(),
			"check", checkErr.Check,
			"user_id", c.Message.AuthorID,
		)
		notice = checkErr.Message
	default:
		slog.Warn("failed to dispatch command", "command", c.CommandName(), "error", err)
	}

	if notice == "" {
		return
	}
	if err := c.Reply(ctx, notice); err != nil {
		slog.Error("failed to send message", "channel_id", c.Message.ChannelID, "error", err)
	}
}
