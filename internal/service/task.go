package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/gesture"
	"github.com/BuzzLyutic/swipe-tasks/internal/model"
	"github.com/BuzzLyutic/swipe-tasks/internal/repo"
	"github.com/BuzzLyutic/swipe-tasks/internal/store"
	"github.com/BuzzLyutic/swipe-tasks/internal/transition"
	"github.com/BuzzLyutic/swipe-tasks/internal/view"
)

var (
	ErrValidation = errors.New("validation error")
)

type Option func(*TaskService)

func WithHapticsBackend(h Haptics) Option {
	return func(s *TaskService) {
		if h != nil {
			s.haptics = h
		}
	}
}

// WithPulse sets the creation pulse length; zero disables it.
func WithPulse(d time.Duration) Option {
	return func(s *TaskService) {
		s.pulse = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		if now != nil {
			s.now = now
		}
	}
}

// TaskService routes button presses, submits and pointer events to the
// transition engine and the store.
type TaskService struct {
	store    *store.Store
	gestures *gesture.Interpreter
	logger   *zap.Logger
	haptics  Haptics
	pulse    time.Duration
	now      func() time.Time
}

func NewTaskService(st *store.Store, gestures *gesture.Interpreter, logger *zap.Logger, opts ...Option) *TaskService {
	s := &TaskService{
		store:    st,
		gestures: gestures,
		logger:   logger,
		haptics:  NopHaptics{},
		pulse:    DefaultPulse,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create reports false when text is blank.
func (s *TaskService) Create(ctx context.Context, text string) (model.Task, bool) {
	t, ok := s.store.Create(ctx, text)
	if !ok {
		s.logger.Debug("ignored blank task")
		return t, false
	}
	s.logger.Info("task created", zap.String("task_id", t.ID))

	if s.pulse > 0 {
		if err := hapticsFrom(ctx, s.haptics).Pulse(ctx, s.pulse); err != nil {
			s.logger.Debug("haptic pulse unavailable", zap.Error(err))
		}
	}
	return t, true
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return t, repo.ErrorNotFound
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, query string) []model.Task {
	return view.FilterBySearch(s.store.Snapshot(), query)
}

// SetStatus parses raw and moves the task there. Unknown ids are ignored.
func (s *TaskService) SetStatus(ctx context.Context, id, raw string) error {
	status, err := model.ParseStatus(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !s.store.SetStatus(ctx, id, status) {
		s.logger.Debug("status change for unknown task", zap.String("task_id", id))
	}
	return nil
}

func (s *TaskService) Complete(ctx context.Context, id string) {
	s.apply(ctx, id, transition.ActionComplete)
}

func (s *TaskService) Advance(ctx context.Context, id string) {
	s.apply(ctx, id, transition.ActionAdvance)
}

func (s *TaskService) Delete(ctx context.Context, id string) {
	s.apply(ctx, id, transition.ActionDelete)
}

func (s *TaskService) apply(ctx context.Context, id string, action transition.Action) {
	var ok bool
	switch action {
	case transition.ActionDelete:
		ok = s.store.Delete(ctx, id)
	case transition.ActionComplete, transition.ActionAdvance:
		_, ok = s.store.Apply(ctx, id, func(cur model.Status) model.Status {
			next, _ := transition.Apply(cur, action)
			return next
		})
	default:
		return
	}

	if !ok {
		s.logger.Debug("action on unknown task",
			zap.String("task_id", id),
			zap.String("action", string(action)),
		)
		return
	}
	s.logger.Info("task action applied",
		zap.String("task_id", id),
		zap.String("action", string(action)),
	)
}

func (s *TaskService) Board(ctx context.Context, query string) view.Board {
	return view.NewBoard(s.store.Snapshot(), query, s.now())
}

func (s *TaskService) Home(ctx context.Context, query string) view.Home {
	return view.NewHome(s.store.Snapshot(), query, s.now())
}

func (s *TaskService) DragStart(ctx context.Context, pointerID string, x, y float64, taskID string) {
	s.gestures.Start(pointerID, x, y, taskID)
}

func (s *TaskService) DragMove(ctx context.Context, x, y float64) *gesture.Preview {
	return s.gestures.Move(x, y)
}

func (s *TaskService) DragActive(ctx context.Context) bool {
	return s.gestures.Active()
}

// DragEnd resolves the current drag and applies whatever it committed.
func (s *TaskService) DragEnd(ctx context.Context) gesture.Commit {
	c := s.gestures.End()
	if c.Committed() {
		s.apply(ctx, c.TaskID, c.Action)
	}
	return c
}
