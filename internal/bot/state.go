package bot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/contoso/talentbot/internal/cards"
	"github.com/contoso/talentbot/internal/db"
)

// CachedMessage is a reference to a previously sent message, kept so a later
// assign command can update the message in place.
type CachedMessage struct {
	ActivityID string
	Card       cards.ThumbnailCard
}

// StateStore holds per-conversation cached messages keyed by task ID.
// Last-writer-wins; a single conversation has at most one in-flight turn,
// so no coordination beyond the store itself is needed.
type StateStore interface {
	// Get returns the cached message for a task, or nil when there is none.
	Get(ctx context.Context, conversationID, taskID string) (*CachedMessage, error)
	// Put stores or replaces the cached message for a task.
	Put(ctx context.Context, conversationID, taskID string, msg CachedMessage) error
}

// Conversation is the per-conversation context handed to the dialog engine
// for one turn. The caller owns its lifecycle: construct before the turn,
// discard after.
type Conversation struct {
	ID    string
	store StateStore
}

// NewConversation binds a conversation ID to a state store.
func NewConversation(id string, store StateStore) *Conversation {
	return &Conversation{ID: id, store: store}
}

// Get looks up a cached message in this conversation.
func (c *Conversation) Get(ctx context.Context, taskID string) (*CachedMessage, error) {
	return c.store.Get(ctx, c.ID, taskID)
}

// Put caches a message in this conversation.
func (c *Conversation) Put(ctx context.Context, taskID string, msg CachedMessage) error {
	return c.store.Put(ctx, c.ID, taskID, msg)
}

// SQLiteStore persists conversation state in the talentbot database.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a StateStore backed by the given database.
func NewSQLiteStore(database *db.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

func (s *SQLiteStore) Get(ctx context.Context, conversationID, taskID string) (*CachedMessage, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT activity_id, card FROM cached_messages
		WHERE conversation_id = ? AND task_id = ?`, conversationID, taskID)

	var msg CachedMessage
	var card string
	if err := row.Scan(&msg.ActivityID, &card); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying cached message: %w", err)
	}
	if err := json.Unmarshal([]byte(card), &msg.Card); err != nil {
		return nil, fmt.Errorf("decoding cached card: %w", err)
	}
	return &msg, nil
}

func (s *SQLiteStore) Put(ctx context.Context, conversationID, taskID string, msg CachedMessage) error {
	card, err := json.Marshal(msg.Card)
	if err != nil {
		return fmt.Errorf("encoding cached card: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cached_messages (conversation_id, task_id, activity_id, card, updated_at)
		VALUES (?, ?, ?, ?, datetime('now'))
		ON CONFLICT(conversation_id, task_id) DO UPDATE SET
			activity_id = excluded.activity_id,
			card = excluded.card,
			updated_at = excluded.updated_at`,
		conversationID, taskID, msg.ActivityID, string(card),
	)
	if err != nil {
		return fmt.Errorf("inserting cached message: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory StateStore for tests and the playground.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]CachedMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]CachedMessage)}
}

func (s *MemoryStore) Get(_ context.Context, conversationID, taskID string) (*CachedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.data[conversationID+"\x00"+taskID]
	if !ok {
		return nil, nil
	}
	return &msg, nil
}

func (s *MemoryStore) Put(_ context.Context, conversationID, taskID string, msg CachedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[conversationID+"\x00"+taskID] = msg
	return nil
}
