package menu

import "log/slog"

type Button struct {
	Text    string
	Payload Payload
}

// Keyboard is an inline keyboard, row by row.
type Keyboard [][]Button

// Main is the six button menu.
func Main() Keyboard {
	return Keyboard{
		{
			{Text: "➕ Add Chat", Payload: Menu(ActionAddChat)},
			{Text: "➖ Remove Chat", Payload: Menu(ActionRemoveChat)},
		},
		{
			{Text: "➕ Add Keyword", Payload: Menu(ActionAddKeyword)},
			{Text: "➖ Remove Keyword", Payload: Menu(ActionRemoveKeyword)},
		},
		{
			{Text: "📋 List Chats", Payload: Menu(ActionListChats)},
			{Text: "📋 List Keywords", Payload: Menu(ActionListKeywords)},
		},
	}
}

// Selection builds one button per item, each selecting the item for action.
// Items whose payload would not fit into Telegram's callback data are left
// out. With nothing to show it returns a single placeholder button.
func Selection(action Action, items []string, placeholder string) Keyboard {
	kb := make(Keyboard, 0, len(items))
	for _, item := range items {
		p := Select(action, item)
		if len(p.String()) > MaxPayloadSize {
			slog.Warn("item is too long for a selection button", "action", action, "item", item)
			continue
		}
		kb = append(kb, []Button{{Text: item, Payload: p}})
	}
	if len(kb) == 0 {
		return Keyboard{{{Text: placeholder, Payload: Noop()}}}
	}
	return kb
}
