// Package transition encodes the task state graph.
//
// today, next and hold form a cycle walked by Advance. done is reached only
// through Complete and left only through Advance, which sends it back to today.
package transition

import "github.com/BuzzLyutic/swipe-tasks/internal/model"

// Initial is the status of every new task.
const Initial = model.StatusToday

type Action string

const (
	ActionNone     Action = "none"
	ActionComplete Action = "complete"
	ActionAdvance  Action = "advance"
	ActionDelete   Action = "delete"
)

// Advance returns the next status in the today -> next -> hold -> today cycle.
// done and any unknown value map to today.
func Advance(s model.Status) model.Status {
	switch s {
	case model.StatusToday:
		return model.StatusNext
	case model.StatusNext:
		return model.StatusHold
	default:
		return model.StatusToday
	}
}

func Complete(model.Status) model.Status {
	return model.StatusDone
}

// CanComplete reports whether the complete action changes anything.
func CanComplete(s model.Status) bool {
	return s != model.StatusDone
}

// Apply returns the status produced by a state-changing action. Delete and
// None do not produce a status and report false.
func Apply(s model.Status, a Action) (model.Status, bool) {
	switch a {
	case ActionComplete:
		return Complete(s), true
	case ActionAdvance:
		return Advance(s), true
	default:
		return s, false
	}
}
