package framework

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/disgoorg/snowflake/v2"
)

// ResolutionKind classifies the result of resolving a message.
type ResolutionKind int

const (
	ResolutionMiss         ResolutionKind = iota // Not a command invocation
	ResolutionUnrecognised                       // Prefix matched but no command did
	ResolutionResolved                           // A command was found
)

// Resolution is the outcome of matching message text against the registry.
type Resolution struct {
	Kind    ResolutionKind
	Group   *Group
	Command *Command
	Args    *Args

	// Token is the text that failed to match for ResolutionUnrecognised.
	Token string
}

// Resolve matches content against the registered groups and commands.
// selfID enables mention-prefix stripping when non-zero.
func (r *Registry) Resolve(cfg *Configuration, selfID snowflake.ID, content string) Resolution {
	text, ok := "", false
	if cfg.OnMention {
		text, ok = stripMention(content, selfID)
	}
	if !ok {
		text, ok = stripPrefix(content, cfg.Prefix, cfg.WithWhitespace)
		if !ok {
			return Resolution{Kind: ResolutionMiss}
		}
	}

	tokens := tokenize(text, cfg.delimiters())
	if len(tokens) == 0 {
		if root := r.root(); root != nil && root.DefaultCommand != nil {
			return resolved(root, root.DefaultCommand, newArgs(text, nil))
		}
		return Resolution{Kind: ResolutionMiss}
	}

	group, consumed := r.matchGroup(tokens)
	if group == nil {
		return Resolution{Kind: ResolutionUnrecognised, Token: tokens[0].text}
	}

	rest := tokens[consumed:]
	if len(rest) == 0 {
		if group.DefaultCommand != nil {
			return resolved(group, group.DefaultCommand, newArgs(text, nil))
		}
		return Resolution{Kind: ResolutionUnrecognised, Group: group, Token: tokens[consumed-1].text}
	}

	if cmd := group.find(rest[0].text); cmd != nil {
		return resolved(group, cmd, newArgs(text, rest[1:]))
	}
	if group.DefaultCommand != nil {
		return resolved(group, group.DefaultCommand, newArgs(text, rest))
	}
	return Resolution{Kind: ResolutionUnrecognised, Group: group, Token: rest[0].text}
}

// matchGroup returns the first group, in registration order, whose prefix
// leads tokens, along with the number of tokens consumed.
func (r *Registry) matchGroup(tokens []token) (*Group, int) {
	for _, g := range r.groups {
		if g.IsRoot() {
			return g, 0
		}
		if g.matches(tokens[0].text) {
			return g, 1
		}
	}
	return nil, 0
}

func resolved(g *Group, cmd *Command, args *Args) Resolution {
	return Resolution{Kind: ResolutionResolved, Group: g, Command: cmd, Args: args}
}

// stripMention removes a leading <@id> or <@!id> naming selfID.
func stripMention(content string, selfID snowflake.ID) (string, bool) {
	if selfID == 0 {
		return "", false
	}
	id := selfID.String()
	for _, mention := range []string{"<@" + id + ">", "<@!" + id + ">"} {
		if rest, ok := strings.CutPrefix(content, mention); ok {
			return strings.TrimLeftFunc(rest, unicode.IsSpace), true
		}
	}
	return "", false
}

// stripPrefix removes the global prefix. Without withWhitespace the command
// must follow the prefix immediately.
func stripPrefix(content, prefix string, withWhitespace bool) (string, bool) {
	rest, ok := strings.CutPrefix(content, prefix)
	if !ok {
		return "", false
	}
	if withWhitespace {
		return strings.TrimLeftFunc(rest, unicode.IsSpace), true
	}
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && unicode.IsSpace(r) {
		return "", false
	}
	return rest, true
}
