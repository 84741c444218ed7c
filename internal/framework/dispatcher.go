package framework

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultDelimiters split arguments on spaces, tabs, newlines and commas.
var DefaultDelimiters = []string{" ", "\t", "\n", ", ", ","}

// Configuration controls how messages are recognised as commands.
type Configuration struct {
	Prefix         string
	OnMention      bool
	WithWhitespace bool
	Delimiters     []string

	Owners []snowflake.ID

	// OwnerPrivilege lets owners bypass permission and role requirements.
	OwnerPrivilege bool

	// Messages from bots and blocked users are dropped before dispatch.
	IgnoreBots   bool
	BlockedUsers []snowflake.ID
}

// DefaultConfiguration returns the configuration used when none is given.
func DefaultConfiguration() Configuration {
	return Configuration{
		Prefix:         "~",
		OnMention:      true,
		WithWhitespace: true,
		Delimiters:     DefaultDelimiters,
		OwnerPrivilege: true,
		IgnoreBots:     true,
	}
}

func (c *Configuration) delimiters() []string {
	if len(c.Delimiters) == 0 {
		return DefaultDelimiters
	}
	return c.Delimiters
}

// OutcomeKind is the terminal state of a dispatch.
type OutcomeKind int

const (
	OutcomeIgnored       OutcomeKind = iota // Dropped before resolution
	OutcomeNormalMessage                    // Not a command
	OutcomeUnrecognised                     // Prefix matched, command did not
	OutcomeCheckFailed                      // Denied by a check
	OutcomeRatelimited                      // Denied by a bucket
	OutcomeSkipped                          // Vetoed by the before-hook
	OutcomeSucceeded                        // Handler returned nil
	OutcomeFailed                           // Handler returned an error
)

// String returns a human-readable representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNormalMessage:
		return "normal_message"
	case OutcomeUnrecognised:
		return "unrecognised"
	case OutcomeCheckFailed:
		return "check_failed"
	case OutcomeRatelimited:
		return "ratelimited"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome describes what a dispatch did.
type Outcome struct {
	Kind    OutcomeKind
	Group   *Group
	Command *Command
	Args    *Args

	// Token is set for OutcomeUnrecognised.
	Token string

	// Err is a *CheckFailedError, *RatelimitedError or *HandlerError.
	Err error
}

// Dispatcher turns inbound messages into command invocations.
// It is safe for concurrent use once hooks are installed.
type Dispatcher struct {
	config   Configuration
	registry *Registry
	counter  *UsageCounter
	checks   *checkPipeline
	sender   Sender
	hooks    hooks

	selfID atomic.Uint64
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher and seals registry against further registration.
func NewDispatcher(
	cfg Configuration,
	registry *Registry,
	counter *UsageCounter,
	membership Membership,
	sender Sender,
) *Dispatcher {
	registry.seal()
	return &Dispatcher{
		config:   cfg,
		registry: registry,
		counter:  counter,
		checks:   newCheckPipeline(&cfg, membership),
		sender:   sender,
		now:      time.Now,
	}
}

// SetSelfID sets the bot's own user ID used for mention prefixes.
func (d *Dispatcher) SetSelfID(id snowflake.ID) {
	d.selfID.Store(uint64(id))
}

// SelfID returns the bot's own user ID, or zero if not yet known.
func (d *Dispatcher) SelfID() snowflake.ID {
	return snowflake.ID(d.selfID.Load())
}

// Before installs the hook that runs ahead of every command.
func (d *Dispatcher) Before(h BeforeHook) { d.hooks.before = h }

// After installs the hook that runs when a command finishes.
func (d *Dispatcher) After(h AfterHook) { d.hooks.after = h }

// UnrecognisedCommand installs the hook for unknown sub-commands.
func (d *Dispatcher) UnrecognisedCommand(h UnrecognisedHook) { d.hooks.unrecognised = h }

// NormalMessage installs the hook for messages that are not commands.
func (d *Dispatcher) NormalMessage(h NormalMessageHook) { d.hooks.normalMessage = h }

// OnDispatchError installs the hook for check and rate-limit denials.
func (d *Dispatcher) OnDispatchError(h DispatchErrorHook) { d.hooks.dispatchError = h }

// Dispatch runs a message through resolution, checks, rate limiting and
// execution. Exactly one terminal hook fires unless the message is ignored
// or the before-hook vetoes it.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) Outcome {
	if d.ignored(msg) {
		return Outcome{Kind: OutcomeIgnored}
	}

	c := NewDispatchContext(msg, d.sender)

	res := d.registry.Resolve(&d.config, d.SelfID(), msg.Content)
	switch res.Kind {
	case ResolutionMiss:
		d.hooks.runNormalMessage(ctx, c)
		return Outcome{Kind: OutcomeNormalMessage}
	case ResolutionUnrecognised:
		c.Group = res.Group
		d.hooks.runUnrecognised(ctx, c, res.Token)
		return Outcome{Kind: OutcomeUnrecognised, Group: res.Group, Token: res.Token}
	}

	c.Group, c.Command, c.Args = res.Group, res.Command, res.Args
	out := Outcome{Group: res.Group, Command: res.Command, Args: res.Args}

	if err := d.checks.run(ctx, c); err != nil {
		d.hooks.runDispatchError(ctx, c, err)
		out.Kind, out.Err = OutcomeCheckFailed, err
		return out
	}

	if b := res.Command.Bucket; b != nil {
		if retry, ok := b.TryAcquire(msg.AuthorID, d.now()); !ok {
			err := &RatelimitedError{Bucket: b.Name(), RetryAfter: retry}
			d.hooks.runDispatchError(ctx, c, err)
			out.Kind, out.Err = OutcomeRatelimited, err
			return out
		}
	}

	if !d.hooks.runBefore(ctx, c) {
		out.Kind = OutcomeSkipped
		return out
	}
	d.counter.Increment(res.Command.Name)

	if err := invoke(ctx, c); err != nil {
		d.hooks.runAfter(ctx, c, err)
		out.Kind, out.Err = OutcomeFailed, err
		return out
	}
	d.hooks.runAfter(ctx, c, nil)
	out.Kind = OutcomeSucceeded
	return out
}

func (d *Dispatcher) ignored(msg Message) bool {
	if msg.AuthorIsBot && d.config.IgnoreBots {
		return true
	}
	return slices.Contains(d.config.BlockedUsers, msg.AuthorID)
}

// invoke runs the handler, converting failures and panics into a HandlerError.
func invoke(ctx context.Context, c *DispatchContext) (err error) {
	name := c.Command.Name
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from command panic", "command", name, "panic", r)
			err = &HandlerError{Command: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if herr := c.Command.Handler(ctx, c, c.Args); herr != nil {
		return &HandlerError{Command: name, Err: herr}
	}
	return nil
}
