package domain

import "strings"

// DirectGreeting is the text sent privately by the messageme command.
const DirectGreeting = "Hellow!"

// zero-width space inserted after "@" to defuse mass mentions.
const zeroWidthSpace = "\u200b"

var mentionDefuser = strings.NewReplacer(
	"@everyone", "@"+zeroWidthSpace+"everyone",
	"@here", "@"+zeroWidthSpace+"here",
)

// SafeContent neutralises @everyone and @here so echoed text cannot ping
// the whole guild.
func SafeContent(s string) string {
	return mentionDefuser.Replace(s)
}
