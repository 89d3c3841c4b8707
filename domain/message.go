// Package domain contains core concepts of the chat notifier.
// This file defines chat messages and how a command token is read from them.
// Messages are immutable and passed by value through the pipeline.
package domain

import (
	"chat-notifier/errors"
	"strings"
	"time"
	"unicode"
)

const (
	// PayloadMarker is the protocol verb announcing a delivered chat message.
	PayloadMarker = "PRIVMSG"
	// PayloadSeparator precedes the message body once the marker is found.
	PayloadSeparator = ':'
	// CommandPrefix starts every command token typed in chat.
	CommandPrefix = '!'
)

// ChatMessage represents one chat line already resolved by the transport.
type ChatMessage struct {
	User    string
	Channel string
	Message string
}

// Delivery wraps a ChatMessage with the instant the transport handed it over.
type Delivery struct {
	Message    ChatMessage
	ReceivedAt time.Time
}

// ExtractBody returns the message body of a raw protocol line.
// Lines without the payload marker, or without a separator after it,
// yield errors.ErrParse and must be discarded silently by the caller.
func ExtractBody(raw string) (string, error) {
	markerPos := strings.Index(raw, PayloadMarker)
	if markerPos < 0 {
		return "", errors.ErrParse
	}
	sepPos := strings.IndexByte(raw[markerPos:], PayloadSeparator)
	if sepPos < 0 {
		return "", errors.ErrParse
	}
	body := raw[markerPos+sepPos+1:]
	return strings.TrimRight(body, "\r\n"), nil
}

// CommandToken extracts the leading command token, prefix included.
// The token runs from the prefix to the first whitespace or the end of the body.
// Control and whitespace characters are stripped from the token only, the body
// itself is left untouched so the payload keeps its inner spacing.
func (m ChatMessage) CommandToken() (string, bool) {
	if m.Message == "" || m.Message[0] != CommandPrefix {
		return "", false
	}
	token := m.Message
	if end := strings.IndexFunc(m.Message, unicode.IsSpace); end >= 0 {
		token = m.Message[:end]
	}
	return strings.Map(dropNoise, token), true
}

func dropNoise(r rune) rune {
	if r == 0 || unicode.IsSpace(r) || unicode.IsControl(r) {
		return -1
	}
	return r
}
