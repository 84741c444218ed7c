package framework

import "context"

// OnlyIn restricts where a command or group may be invoked.
type OnlyIn int

const (
	OnlyInAny   OnlyIn = iota // Default: guilds and direct messages
	OnlyInGuild               // Guild channels only
)

// String returns a human-readable representation of the restriction.
func (o OnlyIn) String() string {
	switch o {
	case OnlyInGuild:
		return "guild"
	default:
		return "any"
	}
}

// Handler executes a resolved command with its parsed arguments.
type Handler func(ctx context.Context, c *DispatchContext, args *Args) error

// Command describes a single invocable command.
// Commands are built at startup and must not be mutated after registration.
type Command struct {
	Name    string
	Aliases []string
	Handler Handler

	// Checks run in order after the built-in gates.
	Checks []Check

	// Bucket is the optional rate limit shared with other commands.
	Bucket *Bucket

	// A permission/role gate passes when either requirement is satisfied.
	RequiredPermissions Permissions
	AllowedRoles        []string

	OnlyIn     OnlyIn
	OwnersOnly bool

	group *Group
}

// Group returns the group the command was registered under.
func (c *Command) Group() *Group {
	return c.group
}

// hasAccessRequirements reports whether the permission/role gate applies.
func (c *Command) hasAccessRequirements() bool {
	return c.RequiredPermissions != 0 || len(c.AllowedRoles) > 0
}

// Group is a named collection of commands sharing a prefix and access policy.
type Group struct {
	Name string

	// Prefixes are alternatives; any one of them selects the group.
	// A group without prefixes is the root group.
	Prefixes []string

	// DefaultCommand runs when the group matches but no sub-command does.
	DefaultCommand *Command

	Commands   []*Command
	Checks     []Check
	OwnersOnly bool
	OnlyIn     OnlyIn

	lookup map[string]*Command
}

// IsRoot reports whether the group matches without consuming a prefix token.
func (g *Group) IsRoot() bool {
	return len(g.Prefixes) == 0
}

func (g *Group) matches(token string) bool {
	for _, p := range g.Prefixes {
		if p == token {
			return true
		}
	}
	return false
}

// find looks a token up against command names and aliases (case-sensitive).
func (g *Group) find(token string) *Command {
	return g.lookup[token]
}
