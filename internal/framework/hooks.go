package framework

import "context"

// BeforeHook runs before a command executes. Returning false skips the command.
type BeforeHook func(ctx context.Context, c *DispatchContext) bool

// AfterHook runs after a command executes; err is nil on success.
type AfterHook func(ctx context.Context, c *DispatchContext, err error)

// UnrecognisedHook runs when a prefix matched but token named no command.
type UnrecognisedHook func(ctx context.Context, c *DispatchContext, token string)

// NormalMessageHook runs for messages that do not invoke a command.
type NormalMessageHook func(ctx context.Context, c *DispatchContext)

// DispatchErrorHook runs when a check or bucket denies a command.
// err is a *CheckFailedError or a *RatelimitedError.
type DispatchErrorHook func(ctx context.Context, c *DispatchContext, err error)

// hooks holds at most one callback per extension point.
type hooks struct {
	before        BeforeHook
	after         AfterHook
	unrecognised  UnrecognisedHook
	normalMessage NormalMessageHook
	dispatchError DispatchErrorHook
}

func (h *hooks) runBefore(ctx context.Context, c *DispatchContext) bool {
	if h.before == nil {
		return true
	}
	return h.before(ctx, c)
}

func (h *hooks) runAfter(ctx context.Context, c *DispatchContext, err error) {
	if h.after != nil {
		h.after(ctx, c, err)
	}
}

func (h *hooks) runUnrecognised(ctx context.Context, c *DispatchContext, token string) {
	if h.unrecognised != nil {
		h.unrecognised(ctx, c, token)
	}
}

func (h *hooks) runNormalMessage(ctx context.Context, c *DispatchContext) {
	if h.normalMessage != nil {
		h.normalMessage(ctx, c)
	}
}

func (h *hooks) runDispatchError(ctx context.Context, c *DispatchContext, err error) {
	if h.dispatchError != nil {
		h.dispatchError(ctx, c, err)
	}
}
