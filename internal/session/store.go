// Package session holds the in-memory per-chat game state. The store is the
// single writer of session state: handlers only see snapshots and feed inputs
// back through its operations.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/dicebot/internal/domain"
)

const shardCount = 64

type shard struct {
	mu       sync.Mutex
	sessions map[int64]*domain.GameSession
}

// Store maps chat IDs to their active game session. Sessions for different
// chats live in different shards, so unrelated chats never contend on a lock;
// operations on the same chat serialize on its shard.
type Store struct {
	shards [shardCount]shard
	ttl    time.Duration
	now    func() time.Time
}

// New creates a store that treats sessions idle longer than ttl as stale.
func New(ttl time.Duration) *Store {
	s := &Store{ttl: ttl, now: time.Now}
	for i := range s.shards {
		s.shards[i].sessions = make(map[int64]*domain.GameSession)
	}
	return s
}

func (s *Store) shardFor(chatID int64) *shard {
	return &s.shards[uint64(chatID)%shardCount]
}

// Create starts a new session for the chat. Fails with ErrGameActive while a
// non-terminal session exists; a session left in the resolved step does not
// block a new game.
func (s *Store) Create(chatID, userID int64, mode domain.Mode) (*domain.GameSession, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: mode %q", domain.ErrInvalidChoice, mode)
	}

	sh := s.shardFor(chatID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if existing, ok := sh.sessions[chatID]; ok && !existing.Done() {
		return nil, domain.ErrGameActive
	}

	step := domain.StepAwaitingChoice
	if !mode.NeedsChoice() {
		step = domain.StepAwaitingRoll
	}
	now := s.now()
	sess := &domain.GameSession{
		ID:        uuid.New(),
		ChatID:    chatID,
		UserID:    userID,
		GameMode:  mode,
		Step:      step,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sh.sessions[chatID] = sess
	return snapshot(sess), nil
}

// Get returns a snapshot of the chat's session, if any. Read-only.
func (s *Store) Get(chatID int64) (*domain.GameSession, bool) {
	sh := s.shardFor(chatID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[chatID]
	if !ok {
		return nil, false
	}
	return snapshot(sess), true
}

// RecordChoice commits the user's selection and advances the session to the
// rolling step. A committed choice is immutable for the session's lifetime.
func (s *Store) RecordChoice(chatID int64, choice domain.Choice) (*domain.GameSession, error) {
	if choice == nil {
		return nil, domain.ErrInvalidChoice
	}

	sh := s.shardFor(chatID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[chatID]
	if !ok {
		return nil, domain.ErrNoActiveGame
	}
	if sess.Step != domain.StepAwaitingChoice {
		return nil, domain.ErrWrongStep
	}
	if choice.Mode() != sess.GameMode {
		return nil, domain.ErrModeMismatch
	}
	if c, ok := choice.(domain.NumberGuessChoice); ok && !domain.ValidRoll(int(c)) {
		return nil, fmt.Errorf("%w: guess %d", domain.ErrInvalidChoice, int(c))
	}

	sess.Choice = choice
	sess.Step = domain.StepAwaitingRoll
	sess.UpdatedAt = s.now()
	return snapshot(sess), nil
}

// RecordRoll appends a rolled die value. Once the mode's required count is
// met, the session advances to the ready step.
func (s *Store) RecordRoll(chatID int64, roll int) (*domain.GameSession, error) {
	if !domain.ValidRoll(roll) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidRoll, roll)
	}

	sh := s.shardFor(chatID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[chatID]
	if !ok {
		return nil, domain.ErrNoActiveGame
	}
	if sess.Step != domain.StepAwaitingRoll {
		return nil, domain.ErrWrongStep
	}

	sess.Rolls = append(sess.Rolls, roll)
	if len(sess.Rolls) == sess.GameMode.RequiredRolls() {
		sess.Step = domain.StepReady
	}
	sess.UpdatedAt = s.now()
	return snapshot(sess), nil
}

// MarkResolved moves a ready session to its terminal step. The caller is
// expected to Clear after delivering the outcome; marking first keeps a
// delivery failure from leaving the chat wedged on a half-finished game.
func (s *Store) MarkResolved(chatID int64) (*domain.GameSession, error) {
	sh := s.shardFor(chatID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[chatID]
	if !ok {
		return nil, domain.ErrNoActiveGame
	}
	if sess.Step != domain.StepReady {
		return nil, domain.ErrWrongStep
	}

	sess.Step = domain.StepResolved
	sess.UpdatedAt = s.now()
	return snapshot(sess), nil
}

// Clear removes the chat's session. Idempotent: clearing an absent chat is a
// no-op.
func (s *Store) Clear(chatID int64) {
	sh := s.shardFor(chatID)
	sh.mu.Lock()
	delete(sh.sessions, chatID)
	sh.mu.Unlock()
}

// Sweep evicts sessions idle longer than the store's ttl and returns how many
// were removed. It takes the same per-shard locks as Create, so eviction can
// never race a new game into a duplicate session.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	evicted := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for chatID, sess := range sh.sessions {
			if sess.UpdatedAt.Before(cutoff) {
				delete(sh.sessions, chatID)
				evicted++
			}
		}
		sh.mu.Unlock()
	}
	return evicted
}

// Len returns the number of active sessions across all shards.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.sessions)
		sh.mu.Unlock()
	}
	return n
}

func snapshot(sess *domain.GameSession) *domain.GameSession {
	cp := *sess
	cp.Rolls = append([]int(nil), sess.Rolls...)
	return &cp
}
