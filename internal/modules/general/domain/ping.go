package domain

import (
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
)

// EscapeMarkdown escapes Discord markdown control characters in s.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// PingAnnouncement describes who used the ping command and where.
type PingAnnouncement struct {
	Username  string
	ChannelID snowflake.ID
}

// NewPingAnnouncement creates a new PingAnnouncement.
func NewPingAnnouncement(username string, channelID snowflake.ID) *PingAnnouncement {
	return &PingAnnouncement{Username: username, ChannelID: channelID}
}

// Text renders the announcement with the username in bold and the channel mentioned.
func (p *PingAnnouncement) Text() string {
	return fmt.Sprintf("User **%s** used the 'ping' command in the <#%s>",
		EscapeMarkdown(p.Username), p.ChannelID)
}
