package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/framework"
)

// errNoAuthor is returned for message events that carry no author.
var errNoAuthor = errors.New("message has no author")

// messageFromEvent converts a gateway MessageCreate event into a framework message.
func messageFromEvent(m *discordgo.MessageCreate) (framework.Message, error) {
	if m == nil || m.Message == nil || m.Author == nil {
		return framework.Message{}, errNoAuthor
	}

	ids := make([]snowflake.ID, 4)
	for i, raw := range []string{m.ID, m.ChannelID, m.GuildID, m.Author.ID} {
		if raw == "" {
			continue
		}
		id, err := snowflake.Parse(raw)
		if err != nil {
			return framework.Message{}, fmt.Errorf("failed to parse snowflake %q: %w", raw, err)
		}
		ids[i] = id
	}

	return framework.Message{
		ID:          ids[0],
		ChannelID:   ids[1],
		GuildID:     ids[2],
		AuthorID:    ids[3],
		AuthorName:  m.Author.Username,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
	}, nil
}
