package menu

import "strings"

// Kind tags a callback payload.
type Kind int

const (
	KindUnknown Kind = iota
	KindMenu
	KindSelect
	KindNoop
)

// Action names what a menu or select button operates on.
type Action string

const (
	ActionAddChat       Action = "add_chat"
	ActionRemoveChat    Action = "rm_chat"
	ActionAddKeyword    Action = "add_kw"
	ActionRemoveKeyword Action = "rm_kw"
	ActionListChats     Action = "list_chats"
	ActionListKeywords  Action = "list_kw"
)

const (
	prefixMenu   = "menu"
	prefixSelect = "select"
	noop         = "noop"
	separator    = ":"

	// MaxPayloadSize is Telegram's limit for callback data, in bytes.
	MaxPayloadSize = 64
)

// Payload is the decoded callback data of an inline button.
type Payload struct {
	Kind   Kind
	Action Action
	Item   string
	Raw    string
}

func Menu(action Action) Payload {
	return Payload{Kind: KindMenu, Action: action}
}

func Select(action Action, item string) Payload {
	return Payload{Kind: KindSelect, Action: action, Item: item}
}

func Noop() Payload {
	return Payload{Kind: KindNoop}
}

// String encodes the payload in its colon-delimited wire form.
func (p Payload) String() string {
	switch p.Kind {
	case KindMenu:
		return prefixMenu + separator + string(p.Action)
	case KindSelect:
		return prefixSelect + separator + string(p.Action) + separator + p.Item
	case KindNoop:
		return noop
	default:
		return p.Raw
	}
}

// ParsePayload decodes callback data. The item of a select payload is
// everything after the second colon, so items may contain colons themselves.
// Data that fits no known shape comes back as KindUnknown.
func ParsePayload(data string) Payload {
	parts := strings.SplitN(data, separator, 3)
	switch {
	case parts[0] == prefixMenu && len(parts) > 1:
		return Payload{Kind: KindMenu, Action: Action(parts[1]), Raw: data}
	case parts[0] == prefixSelect && len(parts) == 3:
		return Payload{Kind: KindSelect, Action: Action(parts[1]), Item: parts[2], Raw: data}
	case data == noop:
		return Payload{Kind: KindNoop, Raw: data}
	default:
		return Payload{Kind: KindUnknown, Raw: data}
	}
}
