package presentation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sglre6355/dispatchbot/internal/framework"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// ErrSlowmodeUnavailable is returned when no channel editor is configured.
var ErrSlowmodeUnavailable = errors.New("slowmode is unavailable without a Discord session")

// Handlers holds the command handlers of the general module.
type Handlers struct {
	about    string
	ping     *application.PingInteractor
	usage    *application.UsageInteractor
	slowmode *application.SlowmodeInteractor
}

// NewHandlers creates a new Handlers. slowmode may be nil.
func NewHandlers(
	about string,
	usage *application.UsageInteractor,
	slowmode *application.SlowmodeInteractor,
) *Handlers {
	return &Handlers{
		about:    about,
		ping:     application.NewPingInteractor(),
		usage:    usage,
		slowmode: slowmode,
	}
}

// HandleAbout replies with the configured about text.
func (h *Handlers) HandleAbout(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
	return c.Reply(ctx, h.about)
}

// HandlePing announces who used the command and in which channel.
func (h *Handlers) HandlePing(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
	result := h.ping.Execute(c.Message.AuthorName, c.Message.ChannelID)
	return c.Reply(ctx, result.Text())
}

// HandleMessageMe greets the invoker in a direct message.
func (h *Handlers) HandleMessageMe(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
	return c.DirectMessage(ctx, domain.DirectGreeting)
}

// HandleSay repeats the arguments with mass mentions defused.
func (h *Handlers) HandleSay(ctx context.Context, c *framework.DispatchContext, args *framework.Args) error {
	return c.Reply(ctx, domain.SafeContent(args.Rest()))
}

// HandleCommands replies with the usage report.
func (h *Handlers) HandleCommands(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
	return c.Reply(ctx, h.usage.Execute())
}

// HandleMultiply multiplies two numeric arguments.
func (h *Handlers) HandleMultiply(ctx context.Context, c *framework.DispatchContext, args *framework.Args) error {
	left, err := args.SingleFloat()
	if err != nil {
		return c.Reply(ctx, multiplyUsage(c))
	}
	right, err := args.SingleFloat()
	if err != nil {
		return c.Reply(ctx, multiplyUsage(c))
	}
	return c.Reply(ctx, domain.Multiply(left, right).String())
}

func multiplyUsage(c *framework.DispatchContext) string {
	return fmt.Sprintf("Usage: %s <number> <number>", c.CommandName())
}

// HandleAmIAdmin confirms the invoker passed the admin gate.
func (h *Handlers) HandleAmIAdmin(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
	return c.Reply(ctx, "Yes, you are.")
}

// HandleEmoji returns a handler replying with the emoji for animal.
func (h *Handlers) HandleEmoji(animal string) framework.Handler {
	return func(ctx context.Context, c *framework.DispatchContext, _ *framework.Args) error {
		emoji, err := domain.EmojiFor(animal)
		if err != nil {
			return err
		}
		return c.Reply(ctx, emoji)
	}
}

// HandleSlowmode sets the slowmode of the invoking channel.
func (h *Handlers) HandleSlowmode(ctx context.Context, c *framework.DispatchContext, args *framework.Args) error {
	if h.slowmode == nil {
		return ErrSlowmodeUnavailable
	}

	seconds, err := args.SingleInt()
	if err != nil {
		return c.Reply(ctx, "Usage: owner slowmode <seconds>")
	}

	msg, err := h.slowmode.Execute(ctx, application.SlowmodeInput{
		ChannelID: c.Message.ChannelID,
		Seconds:   seconds,
	})
	if errors.Is(err, domain.ErrInvalidSlowmode) {
		return c.Reply(ctx, "Slowmode must be between 0 and 21600 seconds.")
	}
	if err != nil {
		if replyErr := c.Reply(ctx, "Failed to set slowmode."); replyErr != nil {
			return errors.Join(err, replyErr)
		}
		return err
	}
	return c.Reply(ctx, msg)
}
