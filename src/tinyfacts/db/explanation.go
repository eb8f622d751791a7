package db

import (
	"context"

	"github.com/jonbodner/proteus"
)

// Explanation is a message that passed the word check, kept so the bot can
// serve one back on request.
type Explanation struct {
	GuildID       int    `prof:"guild_id"`
	ChannelID     int    `prof:"channel_id"`
	MessageID     int    `prof:"message_id"`
	AuthorMention string `prof:"author_mention"`
	Content       string `prof:"content"`
}

var ExplanationDAO ExplanationDAOImpl

type ExplanationDAOImpl struct {
	Upsert func(ctx context.Context, e proteus.ContextExecutor, ex Explanation) (int64, error) `proq:"q:upsert" prop:"ex"`
	Random func(ctx context.Context, e proteus.ContextQuerier, guildID string) (Explanation, error) `proq:"q:random" prop:"guildID"`
	// FindByID is only intended for testing
	FindByID func(ctx context.Context, e proteus.ContextQuerier, messageID int) (Explanation, error) `proq:"q:findByID" prop:"messageID"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO explanation (guild_id, channel_id, message_id, author_mention, content)
				   VALUES (:ex.GuildID:,:ex.ChannelID:,:ex.MessageID:,:ex.AuthorMention:,:ex.Content:)
				   ON CONFLICT(guild_id, channel_id, message_id)
				   DO UPDATE SET content = excluded.content`,
		"findByID": `SELECT * FROM explanation WHERE message_id = :messageID:`,
		"random":   `SELECT * FROM explanation WHERE guild_id = :guildID: ORDER BY RANDOM() LIMIT 1`,
	}
	err := proteus.ShouldBuild(context.Background(), &ExplanationDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
