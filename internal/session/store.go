// Package session gives every browser its own board. Session metadata lives
// in SQLite; the boards themselves stay in process memory.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hobbyhub/internal/board"
)

type Session struct {
	ID string

	expMu   sync.Mutex
	expires time.Time

	mu    sync.Mutex
	board *board.Board
}

// Expires reports when the session lapses unless it is used again.
func (s *Session) Expires() time.Time {
	s.expMu.Lock()
	defer s.expMu.Unlock()
	return s.expires
}

func (s *Session) setExpires(t time.Time) {
	s.expMu.Lock()
	s.expires = t
	s.expMu.Unlock()
}

// Do runs fn with exclusive access to the session's board.
func (s *Session) Do(fn func(b *board.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.board)
}

type Store struct {
	DB       *sql.DB
	TTL      time.Duration
	NewBoard func() *board.Board
	Now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(db *sql.DB, ttl time.Duration) *Store {
	return &Store{
		DB:       db,
		TTL:      ttl,
		NewBoard: func() *board.Board { return board.New() },
		sessions: make(map[string]*Session),
		Now:      time.Now,
	}
}

// Create registers a new session with an empty board.
func (s *Store) Create() (*Session, error) {
	now := s.Now().UTC()
	sess := &Session{
		ID:      uuid.New().String(),
		expires: now.Add(s.TTL),
		board:   s.NewBoard(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.DB.Exec("INSERT INTO sessions (id, created_at, expires_at) VALUES (?, ?, ?)",
		sess.ID, now.Unix(), sess.expires.Unix())
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get returns the live session with the given id and extends its lifetime.
// Unknown and expired sessions report false.
func (s *Store) Get(id string) (*Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt int64
	err := s.DB.QueryRow("SELECT expires_at FROM sessions WHERE id = ?", id).Scan(&expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup session: %w", err)
	}

	now := s.Now().UTC()
	sess, ok := s.sessions[id]
	if !ok || now.Unix() >= expiresAt {
		return nil, false, nil
	}

	expires := now.Add(s.TTL)
	if _, err := s.DB.Exec("UPDATE sessions SET expires_at = ? WHERE id = ?", expires.Unix(), id); err != nil {
		return nil, false, fmt.Errorf("touch session: %w", err)
	}
	sess.setExpires(expires)
	return sess, true, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.DB.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	delete(s.sessions, id)
	return nil
}

// Prune removes expired sessions and their boards. It returns how many were
// removed.
func (s *Store) Prune() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now().UTC().Unix()
	rows, err := s.DB.Query("SELECT id FROM sessions WHERE expires_at <= ?", now)
	if err != nil {
		return 0, fmt.Errorf("list expired sessions: %w", err)
	}
	var expired []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan session: %w", err)
		}
		expired = append(expired, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if _, err := s.DB.Exec("DELETE FROM sessions WHERE expires_at <= ?", now); err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	for _, id := range expired {
		delete(s.sessions, id)
	}
	return len(expired), nil
}

// Len reports the number of boards held in memory.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
