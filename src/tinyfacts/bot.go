package tinyfacts

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts/db"
	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

// minStoreWords is the minimum token count before a clean message is worth
// keeping as a servable fact.
const minStoreWords = 10

type Config struct {
	Token        string
	DBPath       string
	DefaultFlags db.ConfigFlag

	PositiveReacts []string
	NegativeReacts []string

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tDefaultFlags: %s\n\tDBPath: %s\n", c.DefaultFlags, c.DBPath)
}

// FactChecker watches guild messages and enforces the allowed word list:
// clean explanations get stored and praised, messages using words outside
// the list get flagged, explained, or removed depending on configuration.
type FactChecker struct {
	session *discordgo.Session
	sqlDB   *sql.DB
	words   *wordforms.Handle

	config Config

	channelCache map[string]*discordgo.Channel
	dmCache      map[string]*discordgo.Channel
}

func NewFactChecker(config Config, words *wordforms.Handle, sqlDB *sql.DB) FactChecker {
	log.Printf("Fact Checker Config:\n%v", config)
	return FactChecker{
		config:       config,
		words:        words,
		sqlDB:        sqlDB,
		channelCache: make(map[string]*discordgo.Channel),
		dmCache:      make(map[string]*discordgo.Channel),
	}
}

func (h *FactChecker) Open() error {
	var err error
	h.session, err = discordgo.New("Bot " + h.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if h.config.Debug {
		h.session.LogLevel = discordgo.LogDebug
	}

	h.session.AddHandler(h.ReceiveNewMessage)

	h.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessageReactions | discordgo.IntentsDirectMessageReactions

	err = h.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	go UpdateHashes(h.sqlDB)
	return nil
}

func (h *FactChecker) Close() error {
	return h.session.Close()
}

func (h *FactChecker) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic on content, %s, panicking on: %v\n%v", strings.ReplaceAll(m.Content, "\n", "\\n"), r, debug.Stack())
			panic(r)
		}
	}()
	if m.Author.Bot { // prevent SkyNet; don't talk to bots
		return
	}
	if strings.HasPrefix(m.Content, "!facts ") {
		h.HandleAdminCommand(s, m.Message)
		return
	}

	flags := h.lookupFlags(m)

	if h.mentionsMe(s, m) && flags.ServeRandomFact() {
		h.ServeRandomFact(s, m)
		return
	}

	words := SplitWords(m.Content)
	invalid := CheckWords(h.words.Dictionary(), words)
	if len(invalid) == 0 {
		h.HandleClean(s, m, flags, len(words))
	} else {
		h.HandleViolation(s, m, flags, words, invalid)
	}
}

func (h *FactChecker) lookupFlags(m *discordgo.MessageCreate) db.ConfigFlag {
	gid, err1 := strconv.Atoi(m.GuildID)
	cid, err2 := strconv.Atoi(m.ChannelID)
	if err1 != nil || err2 != nil {
		return h.config.DefaultFlags
	}
	flags, err := db.LookupFlags(context.Background(), h.sqlDB, gid, cid)
	if err != nil || flags == 0 {
		return h.config.DefaultFlags
	}
	return flags
}

func (h *FactChecker) mentionsMe(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if s.State == nil || s.State.User == nil {
		return false
	}
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

func (h *FactChecker) HandleClean(s *discordgo.Session, m *discordgo.MessageCreate, flags db.ConfigFlag, wordCount int) {
	if flags.ReactToClean() {
		h.react(s, m, randomString(h.config.PositiveReacts))
	}
	if wordCount < minStoreWords {
		return
	}
	h.StoreExplanation(s, m)
}

func (h *FactChecker) StoreExplanation(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx := context.Background()
	gid, err1 := strconv.Atoi(m.GuildID)
	cid, err2 := strconv.Atoi(m.ChannelID)
	mid, err3 := strconv.Atoi(m.ID)
	if err1 != nil || err2 != nil || err3 != nil {
		return // DMs and other unparseable IDs are not stored
	}
	if err := db.CheckHash(ctx, h.sqlDB, mid, DuplicateHash(m.Content)); err != nil {
		log.Println("not storing explanation,", err)
		return
	}
	_, err := db.ExplanationDAO.Upsert(ctx, h.sqlDB, db.Explanation{
		GuildID:       gid,
		ChannelID:     cid,
		MessageID:     mid,
		AuthorMention: m.Author.Mention(),
		Content:       m.Content,
	})
	if err != nil {
		log.Println("could not store explanation,", err)
		return
	}
	log.Println("stored explanation,", m.ID)
}

func (h *FactChecker) HandleViolation(s *discordgo.Session, m *discordgo.MessageCreate, flags db.ConfigFlag, words []string, invalid map[string]int) {
	if flags.DeleteViolation() {
		h.Delete(s, m, invalid)
		return
	}

	if flags.ReactToViolation() {
		h.react(s, m, randomString(h.config.NegativeReacts))
		log.Println("reacted to violation,", m.ID, strings.ReplaceAll(m.Content, "\n", "\\n"))
	}

	if isDM, err := h.isDM(s, m.ChannelID); err == nil && isDM && flags.ExplainViolation() {
		h.ExplainViolation(s, m, words, invalid)
	} else if err != nil {
		log.Println("could not lookup channel,", err)
	}
}

func (h *FactChecker) Delete(s *discordgo.Session, m *discordgo.MessageCreate, invalid map[string]int) {
	err := s.ChannelMessageDelete(m.ChannelID, m.Message.ID)
	if err != nil {
		log.Println("could not delete message from channel,", err)
		return
	}
	dmChannel, err := h.createDMChannel(s, m.Author.ID)
	if err != nil {
		log.Println("could not create user DM channel,", err)
		return
	}
	c, err := h.lookupChannel(s, m.ChannelID)
	if err != nil {
		log.Println("could not lookup message ChannelID,", err)
		return
	}
	explanation := fmt.Sprintf("I deleted the message you just sent to %s since it uses words outside the allowed list:\n%s\n%s",
		c.Mention(), FormatViolations(invalid), quote(m.Content))
	_, err = s.ChannelMessageSend(dmChannel.ID, explanation)
	if err != nil {
		log.Println("could not send message to user DM channel,", err)
		return
	}
	log.Println("deleted message,", m.ID, strings.ReplaceAll(m.Content, "\n", "\\n"))
}

func (h *FactChecker) ExplainViolation(s *discordgo.Session, m *discordgo.MessageCreate, words []string, invalid map[string]int) {
	located := CheckWordsContext(h.words.Dictionary(), words, 2)
	var sb strings.Builder
	sb.WriteString(FormatViolations(invalid))
	for _, iw := range located {
		sb.WriteString(fmt.Sprintf("\n  `%s` at word %d: \"%s\"", iw.Word, iw.Index, iw.Context))
	}
	dmChannel, err := h.createDMChannel(s, m.Author.ID)
	if err != nil {
		log.Println("could not create user DM channel,", err)
		return
	}
	_, err = s.ChannelMessageSendReply(dmChannel.ID, sb.String(), m.MessageReference)
	if err != nil {
		log.Println("could not send message to user DM channel,", err)
		return
	}
}

func (h *FactChecker) ServeRandomFact(s *discordgo.Session, m *discordgo.MessageCreate) {
	ex, err := db.ExplanationDAO.Random(context.Background(), h.sqlDB, m.GuildID)
	if err != nil {
		log.Println("could not serve a random fact,", err)
		return
	}
	if ex.Content == "" {
		return
	}
	msg := fmt.Sprintf("%s once explained:\n%s", ex.AuthorMention, quote(ex.Content))
	if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
		log.Println("could not send random fact,", err)
	}
}

// FormatViolations renders an invalid-word tally sorted by descending count.
func FormatViolations(invalid map[string]int) string {
	type wc struct {
		word  string
		count int
	}
	sorted := make([]wc, 0, len(invalid))
	for word, count := range invalid {
		sorted = append(sorted, wc{word, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].word < sorted[j].word
	})
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d word(s) outside the allowed list:", len(invalid)))
	for _, e := range sorted {
		plural := ""
		if e.count > 1 {
			plural = "s"
		}
		sb.WriteString(fmt.Sprintf("\n  %s (used %d time%s)", e.word, e.count, plural))
	}
	return sb.String()
}

func (h *FactChecker) isDM(s *discordgo.Session, channelID string) (bool, error) {
	c, err := h.lookupChannel(s, channelID)
	if err != nil {
		return false, err
	}
	return c.Type == discordgo.ChannelTypeDM && len(c.Recipients) == 1, nil
}

func (h *FactChecker) react(s *discordgo.Session, m *discordgo.MessageCreate, reaction string) {
	err := s.MessageReactionAdd(m.ChannelID, m.Message.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
		return
	}
}

func (h *FactChecker) createDMChannel(s *discordgo.Session, authorID string) (*discordgo.Channel, error) {
	if c, ok := h.dmCache[authorID]; ok {
		return c, nil
	}
	c, err := s.UserChannelCreate(authorID)
	if err != nil {
		return nil, err
	}
	log.Println("retrieved new DM channel for user", authorID)
	h.channelCache[c.ID] = c
	h.dmCache[authorID] = c
	return c, nil
}

func (h *FactChecker) lookupChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if c, ok := h.channelCache[channelID]; ok {
		return c, nil
	}
	c, err := s.Channel(channelID)
	if err != nil {
		return nil, err
	}
	log.Println("looked up channel", channelID)
	h.channelCache[channelID] = c
	if c.Type == discordgo.ChannelTypeDM && len(c.Recipients) == 1 {
		h.dmCache[c.Recipients[0].ID] = c
	}
	return c, nil
}

func randomString(strs []string) string {
	return strs[rand.Intn(len(strs))]
}

func quote(str string) string {
	return "> " + strings.ReplaceAll(str, "\n", "\n> ")
}
