package event

import (
	"regexp"
	"strings"

	"github.com/damonto/telegram-monitor/internal/app/menu"
)

// Event is one classified inbound update. It is one of Command, MenuOpen,
// ButtonPress or Text.
type Event interface {
	event()
}

// Message is the transport independent view of an incoming message.
type Message struct {
	ID         int
	UserID     int64
	ChatID     int64
	ChatHandle string
	ChatTitle  string
	Text       string
}

type Command struct {
	Name    string
	Arg     string
	Message Message
}

type MenuOpen struct {
	Message Message
}

type ButtonPress struct {
	QueryID   string
	UserID    int64
	ChatID    int64
	MessageID int
	Payload   menu.Payload
}

// Text is any other message. It may answer a pending prompt, otherwise it is
// checked against the watch-list.
type Text struct {
	Message Message
}

func (Command) event()     {}
func (MenuOpen) event()    {}
func (ButtonPress) event() {}
func (Text) event()        {}

const (
	CommandAddChat       = "addchat"
	CommandRemoveChat    = "rmchat"
	CommandAddKeyword    = "addkw"
	CommandRemoveKeyword = "rmkw"
	CommandListChats     = "listchats"
	CommandListKeywords  = "listkw"
	CommandStart         = "start"
	CommandMenu          = "menu"
)

var (
	commandPattern = regexp.MustCompile(`^/(addchat|rmchat|addkw|rmkw|listchats|listkw)(?:@\w+)?(?:\s+(.+))?$`)
	menuPattern    = regexp.MustCompile(`^/(start|menu)(?:@\w+)?$`)
)

// Classify decides which path a message takes. Slash commands win over the
// menu commands, and everything else is plain text.
func Classify(m Message) Event {
	if match := commandPattern.FindStringSubmatch(m.Text); match != nil {
		return Command{Name: match[1], Arg: strings.TrimSpace(match[2]), Message: m}
	}
	if menuPattern.MatchString(m.Text) {
		return MenuOpen{Message: m}
	}
	return Text{Message: m}
}
