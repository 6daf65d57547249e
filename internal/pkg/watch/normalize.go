package watch

import (
	"strconv"
	"strings"
)

// Identifier is a watched chat identifier in its comparable form.
type Identifier struct {
	Numeric bool
	ID      int64
	Handle  string
}

// Normalize classifies a raw chat identifier. A string made of digits, with
// at most one leading '-', is a numeric chat ID. Anything else is a handle:
// lowercased, without the leading '@' and reduced to the last path segment,
// so "@Foo", "t.me/Foo" and "https://t.me/foo" all become "foo".
func Normalize(raw string) Identifier {
	if isNumeric(raw) {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Identifier{Numeric: true, ID: id}
		}
	}
	handle := strings.TrimPrefix(strings.ToLower(raw), "@")
	if i := strings.LastIndex(handle, "/"); i >= 0 {
		handle = handle[i+1:]
	}
	return Identifier{Handle: handle}
}

func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Filter answers whether a chat is on the watch-list.
type Filter struct {
	ids     map[int64]struct{}
	handles map[string]struct{}
}

func NewFilter(chats []string) Filter {
	f := Filter{
		ids:     make(map[int64]struct{}, len(chats)),
		handles: make(map[string]struct{}, len(chats)),
	}
	for _, c := range chats {
		id := Normalize(c)
		if id.Numeric {
			f.ids[id.ID] = struct{}{}
			continue
		}
		if id.Handle != "" {
			f.handles[id.Handle] = struct{}{}
		}
	}
	return f
}

// Matches reports whether the chat identified by chatID or handle is watched.
// An empty handle never matches.
func (f Filter) Matches(chatID int64, handle string) bool {
	if _, ok := f.ids[chatID]; ok {
		return true
	}
	if handle == "" {
		return false
	}
	_, ok := f.handles[strings.ToLower(handle)]
	return ok
}
