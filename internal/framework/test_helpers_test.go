package framework

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	testSelfID    = snowflake.ID(1000)
	testOwnerID   = snowflake.ID(1)
	testUserID    = snowflake.ID(42)
	testGuildID   = snowflake.ID(500)
	testChannelID = snowflake.ID(600)
)

var errLookupFailed = errors.New("lookup failed")

func noopHandler(context.Context, *DispatchContext, *Args) error { return nil }

func newCommand(name string, aliases ...string) *Command {
	return &Command{Name: name, Aliases: aliases, Handler: noopHandler}
}

func testConfiguration() Configuration {
	cfg := DefaultConfiguration()
	cfg.Prefix = "~"
	cfg.Owners = []snowflake.ID{testOwnerID}
	return cfg
}

func guildMessage(content string) Message {
	return Message{
		ID:         snowflake.ID(1),
		ChannelID:  testChannelID,
		GuildID:    testGuildID,
		AuthorID:   testUserID,
		AuthorName: "tester",
		Content:    content,
	}
}

func directMessage(content string) Message {
	msg := guildMessage(content)
	msg.GuildID = 0
	return msg
}

// stubMembership is a test double for Membership.
type stubMembership struct {
	permissions Permissions
	roles       []string
	err         error

	// ctx is the context of the most recent lookup.
	ctx context.Context
}

func (m *stubMembership) PermissionsOf(ctx context.Context, _, _ snowflake.ID) (Permissions, error) {
	m.ctx = ctx
	return m.permissions, m.err
}

func (m *stubMembership) RolesOf(ctx context.Context, _, _ snowflake.ID) ([]string, error) {
	m.ctx = ctx
	return m.roles, m.err
}

// hookRecorder installs every hook on a dispatcher and records what fired.
type hookRecorder struct {
	mu           sync.Mutex
	fired        []string
	tokens       []string
	afterErrs    []error
	dispatchErrs []error
	veto         bool
}

func (h *hookRecorder) install(d *Dispatcher) {
	d.Before(func(_ context.Context, _ *DispatchContext) bool {
		h.record("before")
		return !h.veto
	})
	d.After(func(_ context.Context, _ *DispatchContext, err error) {
		h.mu.Lock()
		h.afterErrs = append(h.afterErrs, err)
		h.mu.Unlock()
		h.record("after")
	})
	d.UnrecognisedCommand(func(_ context.Context, _ *DispatchContext, token string) {
		h.mu.Lock()
		h.tokens = append(h.tokens, token)
		h.mu.Unlock()
		h.record("unrecognised")
	})
	d.NormalMessage(func(_ context.Context, _ *DispatchContext) {
		h.record("normal_message")
	})
	d.OnDispatchError(func(_ context.Context, _ *DispatchContext, err error) {
		h.mu.Lock()
		h.dispatchErrs = append(h.dispatchErrs, err)
		h.mu.Unlock()
		h.record("dispatch_error")
	})
}

func (h *hookRecorder) record(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fired = append(h.fired, name)
}

// terminal returns the fired hooks other than before.
func (h *hookRecorder) terminal() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var result []string
	for _, name := range h.fired {
		if name != "before" {
			result = append(result, name)
		}
	}
	return result
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
