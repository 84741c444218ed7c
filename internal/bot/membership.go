package bot

import (
	"context"
	"fmt"
	"slices"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/framework"
)

// DiscordMembership implements framework.Membership using the session state
// cache, falling back to the REST API for members not yet cached.
type DiscordMembership struct {
	session *discordgo.Session
}

// NewDiscordMembership creates a new DiscordMembership.
func NewDiscordMembership(session *discordgo.Session) *DiscordMembership {
	return &DiscordMembership{session: session}
}

// PermissionsOf returns the guild-level permissions of a member.
func (d *DiscordMembership) PermissionsOf(ctx context.Context, guildID, userID snowflake.ID) (framework.Permissions, error) {
	guild, member, err := d.lookup(ctx, guildID, userID)
	if err != nil {
		return 0, err
	}
	return framework.Permissions(memberPermissions(guild, member)), nil
}

// RolesOf returns the names of the roles a member holds.
func (d *DiscordMembership) RolesOf(ctx context.Context, guildID, userID snowflake.ID) ([]string, error) {
	guild, member, err := d.lookup(ctx, guildID, userID)
	if err != nil {
		return nil, err
	}
	return roleNames(guild, member), nil
}

func (d *DiscordMembership) lookup(ctx context.Context, guildID, userID snowflake.ID) (*discordgo.Guild, *discordgo.Member, error) {
	guild, err := d.session.State.Guild(guildID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get guild %s from state: %w", guildID, err)
	}

	member, err := d.session.State.Member(guildID.String(), userID.String())
	if err != nil {
		member, err = d.session.GuildMember(guildID.String(), userID.String(), discordgo.WithContext(ctx))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch guild member: %w", err)
		}
	}
	return guild, member, nil
}

// memberPermissions combines the @everyone role with the member's roles.
// Guild owners and administrators hold every permission.
func memberPermissions(guild *discordgo.Guild, member *discordgo.Member) int64 {
	if member.User != nil && member.User.ID == guild.OwnerID {
		return discordgo.PermissionAll
	}

	var perms int64
	for _, role := range guild.Roles {
		// The @everyone role shares its ID with the guild.
		if role.ID == guild.ID || slices.Contains(member.Roles, role.ID) {
			perms |= role.Permissions
		}
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return discordgo.PermissionAll
	}
	return perms
}

func roleNames(guild *discordgo.Guild, member *discordgo.Member) []string {
	names := make([]string, 0, len(member.Roles))
	for _, role := range guild.Roles {
		if slices.Contains(member.Roles, role.ID) {
			names = append(names, role.Name)
		}
	}
	return names
}

// Ensure DiscordMembership implements framework.Membership.
var _ framework.Membership = (*DiscordMembership)(nil)
