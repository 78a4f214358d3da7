package model

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidStatus = errors.New("invalid status")

type Status string

const (
	StatusToday Status = "today"
	StatusNext  Status = "next"
	StatusHold  Status = "hold"
	StatusDone  Status = "done"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusToday, StatusNext, StatusHold, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusToday, StatusNext, StatusHold, StatusDone:
		return true
	default:
		return false
	}
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Task timestamps are Unix milliseconds.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Status    Status `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func (t Task) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

func (t Task) Updated() time.Time {
	return time.UnixMilli(t.UpdatedAt)
}
