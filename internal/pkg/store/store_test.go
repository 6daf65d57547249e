package store

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChatsKeepInsertionOrderAndAreIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, c := range []string{"@zeta", "-100123", "alpha", "@zeta"} {
		if err := s.AddChat(ctx, c); err != nil {
			t.Fatalf("AddChat(%q): %v", c, err)
		}
	}
	chats, err := s.Chats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(chats, []string{"@zeta", "-100123", "alpha"}) {
		t.Errorf("Chats = %v", chats)
	}
}

func TestChatsAreStoredVerbatim(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.AddChat(ctx, "@Foo"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddChat(ctx, "@foo"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveChat(ctx, "@FOO"); err != nil {
		t.Fatal(err)
	}
	chats, _ := s.Chats(ctx)
	if !slices.Equal(chats, []string{"@Foo", "@foo"}) {
		t.Errorf("Chats = %v", chats)
	}
}

func TestRemoveChat(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_ = s.AddChat(ctx, "alice")
	if err := s.RemoveChat(ctx, "12345"); err != nil {
		t.Errorf("removing a missing chat: %v", err)
	}
	if err := s.RemoveChat(ctx, "alice"); err != nil {
		t.Fatal(err)
	}
	chats, _ := s.Chats(ctx)
	if len(chats) != 0 {
		t.Errorf("Chats = %v, want none", chats)
	}
}

func TestKeywordsAreLowercase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, kw := range []string{"Launch", "LAUNCH", "rocket"} {
		if err := s.AddKeyword(ctx, kw); err != nil {
			t.Fatalf("AddKeyword(%q): %v", kw, err)
		}
	}
	keywords, err := s.Keywords(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(keywords, []string{"launch", "rocket"}) {
		t.Errorf("Keywords = %v", keywords)
	}

	if err := s.RemoveKeyword(ctx, "ROCKET"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveKeyword(ctx, "missing"); err != nil {
		t.Errorf("removing a missing keyword: %v", err)
	}
	keywords, _ = s.Keywords(ctx)
	if !slices.Equal(keywords, []string{"launch"}) {
		t.Errorf("Keywords = %v", keywords)
	}
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	chats, err := s.Chats(ctx)
	if err != nil || len(chats) != 0 {
		t.Errorf("Chats = %v, %v", chats, err)
	}
	keywords, err := s.Keywords(ctx)
	if err != nil || len(keywords) != 0 {
		t.Errorf("Keywords = %v, %v", keywords, err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "monitor.db")

	s, err := Open(DefaultConfig(path))
	if err != nil {
		t.Fatal(err)
	}
	_ = s.AddChat(ctx, "@news")
	_ = s.AddKeyword(ctx, "Launch")
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(DefaultConfig(path))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	chats, _ := s.Chats(ctx)
	keywords, _ := s.Keywords(ctx)
	if !slices.Equal(chats, []string{"@news"}) || !slices.Equal(keywords, []string{"launch"}) {
		t.Errorf("after reopen: chats %v keywords %v", chats, keywords)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Config{}); !errors.Is(err, ErrPathRequired) {
		t.Errorf("Open = %v, want %v", err, ErrPathRequired)
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Path: ":memory:"}, ":memory:"},
		{DefaultConfig("monitor.db"), "monitor.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{Config{Path: "file:m.db?cache=shared", BusyTimeoutMs: 10}, "file:m.db?cache=shared&_pragma=busy_timeout(10)"},
	}
	for _, tt := range tests {
		if got := dsn(tt.cfg); got != tt.want {
			t.Errorf("dsn(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}
