package router

import (
	"context"

	"task-submission-bot/internal/model"
)

// Match selects how a command pattern is compared against message text.
type Match int

const (
	// MatchWord matches the pattern as the first whitespace-delimited word.
	MatchWord Match = iota
	// MatchExact matches the whole trimmed text.
	MatchExact
	// MatchPrefix matches any text starting with the pattern.
	MatchPrefix
)

// Access is a set of gates checked before a handler runs.
type Access uint8

const (
	AccessAnyone    Access = 0
	AccessAdminOnly Access = 1 << iota
	AccessDMOnly
)

func (a Access) String() string {
	switch {
	case a&AccessAdminOnly != 0 && a&AccessDMOnly != 0:
		return "admin,dm"
	case a&AccessAdminOnly != 0:
		return "admin"
	case a&AccessDMOnly != 0:
		return "dm"
	default:
		return "anyone"
	}
}

// Input is what a handler receives.
type Input struct {
	Event model.Event
	Args  []string // whitespace-split words after the pattern
	Rest  string   // raw text after the pattern, trimmed
}

// HandlerFunc runs one command. Returned errors are logged; handlers reply to
// the user themselves.
type HandlerFunc func(ctx context.Context, in Input) error

// Command is one registry entry.
type Command struct {
	Name    string
	Pattern string
	Match   Match
	Access  Access
	Usage   string
	Handle  HandlerFunc
}

// CommandInfo is the public description of a registered command.
type CommandInfo struct {
	Name   string `json:"name"`
	Usage  string `json:"usage"`
	Access string `json:"access"`
}

// Replier sends a reply to an inbound message.
type Replier interface {
	Reply(ctx context.Context, channelID, messageID, text string) (string, error)
}

// Options configures a Registry.
type Options struct {
	AdminIDs        []string
	RateLimitPerMin int
}
