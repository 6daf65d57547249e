package handler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/pkg/util"
)

const (
	textMenu            = "Please select an action:"
	textMissingArgument = "❓ Unknown command or missing argument."
	textChatAdded       = "✅ Chat added: %s"
	textChatRemoved     = "🗑️ Chat removed: %s"
	textKeywordAdded    = "✅ Keyword added: %s"
	textKeywordRemoved  = "🗑️ Keyword removed: %s"

	textNoChats    = "No chats configured."
	textNoKeywords = "No keywords configured."

	textPromptChat     = "🔹 Send the chat username or ID to add:"
	textPromptKeyword  = "🔹 Send the keyword to add:"
	textSelectChat     = "🔹 Select a chat to remove:"
	textSelectKeyword  = "🔹 Select a keyword to remove:"
	textRemovedChat    = "🗑️ Removed chat: %s"
	textRemovedKeyword = "🗑️ Removed keyword: %s"

	placeholderNoChats    = "No chats"
	placeholderNoKeywords = "No keywords"

	// Telegram rejects callback answers longer than this.
	maxAlertLength = 200
)

func listChats(chats []string) string {
	if len(chats) == 0 {
		return textNoChats
	}
	return "Monitored chats:\n" + strings.Join(chats, "\n")
}

func listKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return textNoKeywords
	}
	return "Monitored keywords:\n" + strings.Join(sorted(keywords), "\n")
}

func sorted(items []string) []string {
	items = slices.Clone(items)
	slices.Sort(items)
	return items
}

func chatName(m event.Message) string {
	return util.FirstNonEmpty(m.ChatTitle, m.ChatHandle, strconv.FormatInt(m.ChatID, 10))
}

// deepLink points at the message, which is only possible for public chats.
func deepLink(m event.Message) string {
	if m.ChatHandle == "" {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s/%d", strings.ToLower(m.ChatHandle), m.ID)
}

func notification(keyword string, m event.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Keyword '%s' detected in '%s':\n%s", keyword, chatName(m), m.Text)
	if link := deepLink(m); link != "" {
		b.WriteString("\n")
		b.WriteString(link)
	}
	return b.String()
}
