package framework

import (
	"context"
	"log/slog"
	"slices"

	"github.com/disgoorg/snowflake/v2"
)

// Names of the built-in gates, as reported in CheckFailedError.
const (
	CheckOwnersOnly  = "owners_only"
	CheckGuildOnly   = "guild_only"
	CheckPermissions = "permissions"
)

// Permissions is a bit set of guild permissions.
type Permissions int64

// Contains reports whether p is a superset of required.
func (p Permissions) Contains(required Permissions) bool {
	return p&required == required
}

// Membership answers permission and role queries for guild members.
type Membership interface {
	// PermissionsOf returns the guild-level permissions of a user.
	PermissionsOf(ctx context.Context, guildID, userID snowflake.ID) (Permissions, error)

	// RolesOf returns the names of the roles a user holds in a guild.
	RolesOf(ctx context.Context, guildID, userID snowflake.ID) ([]string, error)
}

// CheckResult is the verdict of a single check.
type CheckResult struct {
	passed  bool
	message string
}

// Pass lets the command continue.
func Pass() CheckResult { return CheckResult{passed: true} }

// Fail denies the command without a user-facing reason.
func Fail() CheckResult { return CheckResult{} }

// FailWithMessage denies the command with a reason meant for the invoker.
func FailWithMessage(msg string) CheckResult { return CheckResult{message: msg} }

// Passed reports whether the check allowed the command.
func (r CheckResult) Passed() bool { return r.passed }

// Message returns the failure reason, if any.
func (r CheckResult) Message() string { return r.message }

// Check is a named predicate gating a command.
type Check struct {
	Name string
	Func func(c *DispatchContext) CheckResult
}

// checkPipeline evaluates group and command gates in a fixed order and stops
// at the first failure.
type checkPipeline struct {
	owners         map[snowflake.ID]struct{}
	ownerPrivilege bool
	membership     Membership
}

func newCheckPipeline(cfg *Configuration, membership Membership) *checkPipeline {
	owners := make(map[snowflake.ID]struct{}, len(cfg.Owners))
	for _, id := range cfg.Owners {
		owners[id] = struct{}{}
	}
	return &checkPipeline{
		owners:         owners,
		ownerPrivilege: cfg.OwnerPrivilege,
		membership:     membership,
	}
}

func (p *checkPipeline) isOwner(id snowflake.ID) bool {
	_, ok := p.owners[id]
	return ok
}

func (p *checkPipeline) run(ctx context.Context, c *DispatchContext) *CheckFailedError {
	g, cmd := c.Group, c.Command
	author := c.Message.AuthorID

	if (g.OwnersOnly || cmd.OwnersOnly) && !p.isOwner(author) {
		return &CheckFailedError{Check: CheckOwnersOnly}
	}
	if (g.OnlyIn == OnlyInGuild || cmd.OnlyIn == OnlyInGuild) && !c.Message.InGuild() {
		return &CheckFailedError{Check: CheckGuildOnly}
	}
	if cmd.hasAccessRequirements() && !(p.ownerPrivilege && p.isOwner(author)) {
		if !p.hasAccess(ctx, c) {
			return &CheckFailedError{Check: CheckPermissions}
		}
	}
	for _, checks := range [][]Check{g.Checks, cmd.Checks} {
		for _, check := range checks {
			if res := check.Func(c); !res.Passed() {
				return &CheckFailedError{Check: check.Name, Message: res.Message()}
			}
		}
	}
	return nil
}

// hasAccess passes when the member's permissions cover RequiredPermissions or
// one of their roles is in AllowedRoles. Lookup errors count as a denial.
func (p *checkPipeline) hasAccess(ctx context.Context, c *DispatchContext) bool {
	if !c.Message.InGuild() || p.membership == nil {
		return false
	}
	guildID, userID := c.Message.GuildID, c.Message.AuthorID
	cmd := c.Command

	if cmd.RequiredPermissions != 0 {
		perms, err := p.membership.PermissionsOf(ctx, guildID, userID)
		if err != nil {
			slog.Warn("failed to resolve member permissions",
				"guild_id", guildID, "user_id", userID, "error", err)
		} else if perms.Contains(cmd.RequiredPermissions) {
			return true
		}
	}
	if len(cmd.AllowedRoles) > 0 {
		roles, err := p.membership.RolesOf(ctx, guildID, userID)
		if err != nil {
			slog.Warn("failed to resolve member roles",
				"guild_id", guildID, "user_id", userID, "error", err)
			return false
		}
		return slices.ContainsFunc(roles, func(r string) bool {
			return slices.Contains(cmd.AllowedRoles, r)
		})
	}
	return false
}
