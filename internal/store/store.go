// Package store holds the canonical, ordered task collection and keeps the
// persistence backend in step with it. Every mutation writes the entire
// collection under a single key; there is no delta or batched write.
package store

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/model"
	"github.com/BuzzLyutic/swipe-tasks/internal/repo"
	"github.com/BuzzLyutic/swipe-tasks/internal/transition"
)

const DefaultKey = "tasks"

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

type Store struct {
	backend repo.Backend
	logger  *zap.Logger
	key     string
	now     func() time.Time

	mtx    sync.Mutex
	tasks  []model.Task
	lastID int64
}

func New(backend repo.Backend, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		key:     DefaultKey,
		now:     time.Now,
		tasks:   []model.Task{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadInitial replaces the in-memory collection with the persisted one.
// Absent, unreadable or malformed payloads yield an empty collection.
func (s *Store) LoadInitial(ctx context.Context) []model.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = s.read(ctx)
	s.lastID = 0
	for _, t := range s.tasks {
		if n, err := strconv.ParseInt(t.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	s.logger.Info("tasks loaded", zap.Int("count", len(s.tasks)), zap.String("key", s.key))
	return s.copyLocked()
}

func (s *Store) read(ctx context.Context) []model.Task {
	payload, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, repo.ErrorNotFound) {
		return []model.Task{}
	}
	if err != nil {
		s.logger.Warn("failed to read tasks, starting empty", zap.String("key", s.key), zap.Error(err))
		return []model.Task{}
	}
	tasks, err := Decode(payload)
	if err != nil {
		s.logger.Warn("ignoring stored tasks", zap.String("key", s.key), zap.Error(err))
		return []model.Task{}
	}
	return tasks
}

// Create prepends a new task built from text. It reports false, and writes
// nothing, when text is empty after trimming.
func (s *Store) Create(ctx context.Context, text string) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := s.now().UnixMilli()
	t := model.Task{
		ID:        s.nextIDLocked(now),
		Text:      text,
		Status:    transition.Initial,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.tasks = append([]model.Task{t}, s.tasks...)
	s.persistLocked(ctx)
	return t, true
}

// nextIDLocked derives an id from a millisecond clock reading, bumping it past
// the last issued id so ids stay unique even within one millisecond.
func (s *Store) nextIDLocked(nowMilli int64) string {
	id := nowMilli
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// SetStatus reports false when no task has the given id.
func (s *Store) SetStatus(ctx context.Context, id string, status model.Status) bool {
	_, ok := s.Apply(ctx, id, func(model.Status) model.Status { return status })
	return ok
}

// Apply replaces the status of task id with next(current status) in one
// step, so the current status cannot change between reading and writing it.
func (s *Store) Apply(ctx context.Context, id string, next func(model.Status) model.Status) (model.Task, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Task{}, false
	}
	t := &s.tasks[i]
	t.Status = next(t.Status)
	t.UpdatedAt = max(s.now().UnixMilli(), t.CreatedAt)
	s.persistLocked(ctx)
	return *t, true
}

// Delete removes the task with the given id. A second call is a no-op.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.persistLocked(ctx)
	return true
}

func (s *Store) Get(id string) (model.Task, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// Snapshot returns a copy of the collection in canonical order.
func (s *Store) Snapshot() []model.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked is best effort: a failed write is logged and in-memory state
// stays authoritative.
func (s *Store) persistLocked(ctx context.Context) {
	payload, err := Encode(s.tasks)
	if err != nil {
		s.logger.Warn("failed to encode tasks", zap.Error(err))
		return
	}
	if err := s.backend.Set(ctx, s.key, payload); err != nil {
		s.logger.Warn("failed to persist tasks",
			zap.String("key", s.key),
			zap.Int("count", len(s.tasks)),
			zap.Error(err),
		)
	}
}
