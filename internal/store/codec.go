package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/swipe-tasks/internal/model"
)

var ErrMalformed = errors.New("malformed task payload")

// Encode serializes the whole collection as a JSON array in canonical order.
func Encode(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a payload written by Encode. Any element that could not have
// been produced by the store makes the whole payload malformed.
func Decode(payload string) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal([]byte(payload), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if tasks == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformed)
	}

	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID == "":
			return nil, fmt.Errorf("%w: task %d has no id", ErrMalformed, i)
		case strings.TrimSpace(t.Text) == "":
			return nil, fmt.Errorf("%w: task %s has no text", ErrMalformed, t.ID)
		case t.UpdatedAt < t.CreatedAt:
			return nil, fmt.Errorf("%w: task %s updated before it was created", ErrMalformed, t.ID)
		case !t.Status.Valid():
			return nil, fmt.Errorf("%w: task %s has status %q", ErrMalformed, t.ID, t.Status)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrMalformed, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return tasks, nil
}
