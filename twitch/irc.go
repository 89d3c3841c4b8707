package twitch

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"strings"
)

// ParseLine turns one IRC line into a ChatMessage.
// Only PRIVMSG lines are chat messages, everything else yields errors.ErrParse.
//
//	@badge-info=;color=#FF0000 :ann!ann@ann.tmi.twitch.tv PRIVMSG #stream :!cc hello
func ParseLine(raw string) (domain.ChatMessage, error) {
	line := strings.TrimRight(raw, "\r\n")
	if strings.HasPrefix(line, "@") {
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return domain.ChatMessage{}, fmt.Errorf("%w: tags only", errors.ErrParse)
		}
		line = line[sp+1:]
	}

	var user string
	if strings.HasPrefix(line, ":") {
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return domain.ChatMessage{}, fmt.Errorf("%w: prefix only", errors.ErrParse)
		}
		source := line[1:sp]
		if bang := strings.IndexByte(source, '!'); bang >= 0 {
			source = source[:bang]
		}
		user = source
		line = line[sp+1:]
	}

	verb, params, _ := strings.Cut(line, " ")
	if verb != domain.PayloadMarker {
		return domain.ChatMessage{}, fmt.Errorf("%w: %s", errors.ErrParse, verb)
	}
	channel, _, _ := strings.Cut(params, " ")

	body, err := domain.ExtractBody(line)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.ChatMessage{
		User:    user,
		Channel: strings.TrimPrefix(channel, "#"),
		Message: body,
	}, nil
}

// SplitFrame splits a websocket frame into its IRC lines. A frame can carry several.
func SplitFrame(frame string) []string {
	var lines []string
	for _, line := range strings.Split(frame, "\r\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
