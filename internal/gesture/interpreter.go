// Package gesture turns a continuous horizontal drag on a task card into at
// most one committed action.
//
// Three distances (device-independent pixels) drive the classification:
//
//	|dx| <= DeadZone            jitter, or a vertical scroll: no preview
//	|dx| >  PreviewThreshold    a pending action is shown
//	|dx| >  CommitThreshold     the pending action runs when the drag ends
//
// Between PreviewThreshold and CommitThreshold the user sees the pending
// action but can still release without committing it.
package gesture

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/transition"
)

const (
	DeadZone         = 20.0
	PreviewThreshold = 60.0
	CommitThreshold  = 100.0
)

// Preview describes an in-progress horizontal swipe. Offset is the raw
// horizontal displacement the card should be rendered at.
type Preview struct {
	TaskID string            `json:"task_id"`
	Action transition.Action `json:"action"`
	Offset float64           `json:"offset"`
}

// Commit is the result of ending a drag. Action is ActionNone when nothing
// should happen and the card snaps back.
type Commit struct {
	Action transition.Action `json:"action"`
	TaskID string            `json:"task_id,omitempty"`
}

func (c Commit) Committed() bool {
	return c.Action != transition.ActionNone
}

type drag struct {
	pointerID string
	taskID    string
	originX   float64
	originY   float64
	preview   *Preview
}

// Interpreter tracks at most one drag at a time.
type Interpreter struct {
	logger *zap.Logger

	mtx     sync.Mutex
	current *drag
}

func NewInterpreter(logger *zap.Logger) *Interpreter {
	return &Interpreter{logger: logger}
}

// Start begins tracking a drag on taskID. A drag already in flight is
// discarded, not treated as an error.
func (in *Interpreter) Start(pointerID string, x, y float64, taskID string) {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	if in.current != nil {
		in.logger.Debug("discarding stale drag",
			zap.String("pointer_id", in.current.pointerID),
			zap.String("task_id", in.current.taskID),
		)
	}
	in.current = &drag{
		pointerID: pointerID,
		taskID:    taskID,
		originX:   x,
		originY:   y,
	}
}

// Move classifies the pointer position against the drag origin. It returns
// nil for non-horizontal or insignificant movement, in which case the caller
// must leave native scrolling alone, and the previous preview is kept: a drag
// that returns to the dead zone or turns vertical still ends with the last
// horizontal classification. A move back between DeadZone and
// PreviewThreshold replaces it with ActionNone.
func (in *Interpreter) Move(x, y float64) *Preview {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	if in.current == nil {
		return nil
	}
	dx := x - in.current.originX
	dy := y - in.current.originY
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= DeadZone {
		return nil
	}

	p := &Preview{
		TaskID: in.current.taskID,
		Action: classify(dx),
		Offset: dx,
	}
	in.current.preview = p
	copied := *p
	return &copied
}

func classify(dx float64) transition.Action {
	switch {
	case dx > PreviewThreshold:
		return transition.ActionComplete
	case dx < -PreviewThreshold:
		return transition.ActionDelete
	default:
		return transition.ActionNone
	}
}

// End resolves the last preview into a commit and always clears the drag,
// including when End arrives without a Start or without any Move.
func (in *Interpreter) End() Commit {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	d := in.current
	in.current = nil

	if d == nil || d.preview == nil {
		return Commit{Action: transition.ActionNone}
	}
	p := d.preview
	if p.Action == transition.ActionNone || math.Abs(p.Offset) <= CommitThreshold {
		return Commit{Action: transition.ActionNone}
	}
	return Commit{Action: p.Action, TaskID: p.TaskID}
}

func (in *Interpreter) Active() bool {
	in.mtx.Lock()
	defer in.mtx.Unlock()
	return in.current != nil
}
