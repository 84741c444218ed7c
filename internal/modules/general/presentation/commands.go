package presentation

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/dispatchbot/internal/framework"
)

// Bucket settings for the general module's rate-limited commands.
var (
	EmojiBucketConfig = framework.BucketConfig{Delay: 5 * time.Second}

	ComplicatedBucketConfig = framework.BucketConfig{
		Delay:    5 * time.Second,
		TimeSpan: 30 * time.Second,
		Limit:    2,
	}
)

// Groups builds the command groups of the general module.
// Prefixed groups come first so they are matched before the root group.
func Groups(h *Handlers) []*framework.Group {
	emojiBucket := framework.NewBucket("emoji", EmojiBucketConfig)
	complicatedBucket := framework.NewBucket("complicated", ComplicatedBucketConfig)

	bird := &framework.Command{Name: "bird", Handler: h.HandleEmoji("bird"), Bucket: emojiBucket}
	emoji := &framework.Group{
		Name:           "emoji",
		Prefixes:       []string{"emoji", "em"},
		DefaultCommand: bird,
		Commands: []*framework.Command{
			bird,
			{Name: "cat", Aliases: []string{"kitty"}, Handler: h.HandleEmoji("cat"), Bucket: emojiBucket},
			{Name: "dog", Handler: h.HandleEmoji("dog"), Bucket: emojiBucket},
		},
	}

	owner := &framework.Group{
		Name:       "owner",
		Prefixes:   []string{"owner"},
		OwnersOnly: true,
		Commands: []*framework.Command{{
			Name:                "slowmode",
			Handler:             h.HandleSlowmode,
			RequiredPermissions: framework.Permissions(discordgo.PermissionManageChannels),
			OnlyIn:              framework.OnlyInGuild,
		}},
	}

	general := &framework.Group{
		Name: "general",
		Commands: []*framework.Command{
			{Name: "about", Handler: h.HandleAbout},
			{Name: "ping", Handler: h.HandlePing},
			{Name: "messageme", Handler: h.HandleMessageMe},
			{Name: "say", Handler: h.HandleSay, Checks: []framework.Check{HasArguments}},
			{Name: "commands", Handler: h.HandleCommands},
			{Name: "multiply", Aliases: []string{"times"}, Handler: h.HandleMultiply, Bucket: complicatedBucket},
			{
				Name:                "am_i_admin",
				Handler:             h.HandleAmIAdmin,
				AllowedRoles:        []string{"Admin"},
				RequiredPermissions: framework.Permissions(discordgo.PermissionAdministrator),
				OnlyIn:              framework.OnlyInGuild,
			},
		},
	}

	return []*framework.Group{emoji, owner, general}
}
