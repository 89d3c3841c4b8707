package sink

import (
	"chat-notifier/domain"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var rainbow = []color.Color{
	color.FgRed, color.FgYellow, color.FgGreen, color.FgCyan, color.FgBlue, color.FgMagenta,
}

// Console prints notifications to a terminal, one colour per letter.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Present(n domain.Notification) {
	header := color.FgGray.Sprintf("[%s] %s", n.At.Local().Format("15:04:05"), n.Author)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.out, "%s %s\n", header, Rainbow(n.Text))
}

// Rainbow colours every visible rune, cycling through the palette.
func Rainbow(text string) string {
	var sb strings.Builder
	i := 0
	for _, r := range text {
		if r == ' ' || r == '\n' {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(rainbow[i%len(rainbow)].Sprint(string(r)))
		i++
	}
	return sb.String()
}
