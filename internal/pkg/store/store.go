package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type Chat struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Chat string `gorm:"type:TEXT;uniqueIndex;not null"`
}

func (Chat) TableName() string { return "chats" }

type Keyword struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	Keyword string `gorm:"type:TEXT;uniqueIndex;not null"`
}

func (Keyword) TableName() string { return "keywords" }

type Config struct {
	Path          string
	BusyTimeoutMs int
	WAL           bool
	Verbose       bool
}

func DefaultConfig(path string) Config {
	return Config{
		Path:          path,
		BusyTimeoutMs: 5000,
		WAL:           true,
	}
}

// Store is the sqlite backed watch-list.
type Store struct {
	db *gorm.DB
}

var ErrPathRequired = errors.New("database path is required")

func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, ErrPathRequired
	}
	level := logger.Silent
	if cfg.Verbose {
		level = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(dsn(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite only tolerates one writer, and an in-memory database only exists
	// on the connection that created it.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&Chat{}, &Keyword{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func dsn(cfg Config) string {
	var pragmas []string
	if cfg.BusyTimeoutMs > 0 {
		pragmas = append(pragmas, fmt.Sprintf("_pragma=busy_timeout(%d)", cfg.BusyTimeoutMs))
	}
	if cfg.WAL && cfg.Path != ":memory:" {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	if len(pragmas) == 0 {
		return cfg.Path
	}
	sep := "?"
	if strings.Contains(cfg.Path, "?") {
		sep = "&"
	}
	return cfg.Path + sep + strings.Join(pragmas, "&")
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AddChat stores chat verbatim. Adding a chat twice is a no-op.
func (s *Store) AddChat(ctx context.Context, chat string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Chat{Chat: chat}).Error
	if err != nil {
		return fmt.Errorf("add chat %q: %w", chat, err)
	}
	return nil
}

func (s *Store) RemoveChat(ctx context.Context, chat string) error {
	if err := s.db.WithContext(ctx).Where("chat = ?", chat).Delete(&Chat{}).Error; err != nil {
		return fmt.Errorf("remove chat %q: %w", chat, err)
	}
	return nil
}

// Chats returns the watched chats in insertion order.
func (s *Store) Chats(ctx context.Context) ([]string, error) {
	var chats []string
	if err := s.db.WithContext(ctx).Model(&Chat{}).Order("id").Pluck("chat", &chats).Error; err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

// AddKeyword stores the lowercase keyword. Adding a keyword twice is a no-op.
func (s *Store) AddKeyword(ctx context.Context, keyword string) error {
	keyword = strings.ToLower(keyword)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Keyword{Keyword: keyword}).Error
	if err != nil {
		return fmt.Errorf("add keyword %q: %w", keyword, err)
	}
	return nil
}

func (s *Store) RemoveKeyword(ctx context.Context, keyword string) error {
	keyword = strings.ToLower(keyword)
	if err := s.db.WithContext(ctx).Where("keyword = ?", keyword).Delete(&Keyword{}).Error; err != nil {
		return fmt.Errorf("remove keyword %q: %w", keyword, err)
	}
	return nil
}

// Keywords returns the watched keywords in insertion order.
func (s *Store) Keywords(ctx context.Context) ([]string, error) {
	var keywords []string
	if err := s.db.WithContext(ctx).Model(&Keyword{}).Order("id").Pluck("keyword", &keywords).Error; err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return keywords, nil
}
