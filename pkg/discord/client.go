package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// Client wraps a discordgo session.
type Client struct {
	session    *discordgo.Session
	httpClient *http.Client
}

var _ IDiscord = (*Client)(nil)

// NewClient creates a Discord bot client for token. The gateway is not opened until Open is called.
func NewClient(token string) (*Client, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return &Client{
		session:    s,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

// SetHTTPClient overrides the HTTP client used for REST calls and attachment downloads.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.session.Client = hc
	c.httpClient = hc
}

// OnMessageCreate registers fn for every MessageCreate gateway event and returns a remover.
func (c *Client) OnMessageCreate(fn func(*discordgo.Session, *discordgo.MessageCreate)) func() {
	return c.session.AddHandler(fn)
}

// Open connects to the gateway.
func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (c *Client) Close() error {
	return c.session.Close()
}

func (c *Client) SendMessage(ctx context.Context, channelID, text string) (string, error) {
	var firstID string
	for _, chunk := range splitMessage(text, MaxMessageLength) {
		msg, err := c.session.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			return firstID, fmt.Errorf("failed to send message: %w", err)
		}
		if firstID == "" {
			firstID = msg.ID
		}
	}
	return firstID, nil
}

func (c *Client) Reply(ctx context.Context, channelID, messageID, text string) (string, error) {
	if messageID == "" {
		return c.SendMessage(ctx, channelID, text)
	}

	ref := &discordgo.MessageReference{MessageID: messageID, ChannelID: channelID}
	var firstID string
	for i, chunk := range splitMessage(text, MaxMessageLength) {
		var (
			msg *discordgo.Message
			err error
		)
		if i == 0 {
			msg, err = c.session.ChannelMessageSendReply(channelID, chunk, ref, discordgo.WithContext(ctx))
		} else {
			msg, err = c.session.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx))
		}
		if err != nil {
			return firstID, fmt.Errorf("failed to send reply: %w", err)
		}
		if firstID == "" {
			firstID = msg.ID
		}
	}
	return firstID, nil
}

func (c *Client) SendDM(ctx context.Context, userID, text string) (string, error) {
	ch, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to open DM channel: %w", err)
	}
	return c.SendMessage(ctx, ch.ID, text)
}

func (c *Client) SendDMFile(ctx context.Context, userID string, file File) error {
	ch, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	_, err = c.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Files: []*discordgo.File{{
			Name:        file.Name,
			ContentType: file.ContentType,
			Reader:      file.Reader,
		}},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send DM file: %w", err)
	}
	return nil
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	return nil
}

func (c *Client) ChannelMessages(ctx context.Context, channelID, beforeID string, limit int) ([]Message, error) {
	msgs, err := c.session.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel messages: %w", err)
	}

	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		msg := Message{ID: m.ID, ChannelID: m.ChannelID, Content: m.Content}
		if m.Author != nil {
			msg.AuthorID = m.Author.ID
		}
		out = append(out, msg)
	}
	return out, nil
}

func (c *Client) BotUserID(ctx context.Context) (string, error) {
	if c.session.State != nil && c.session.State.User != nil {
		return c.session.State.User.ID, nil
	}

	u, err := c.session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return u.ID, nil
}

func (c *Client) DownloadAttachment(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build attachment request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAttachmentFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrAttachmentFetch, resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%w: %v", ErrAttachmentFetch, err)
	}
	return nil
}

// splitMessage breaks text into chunks of at most limit bytes, preferring line boundaries.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
