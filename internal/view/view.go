// Package view derives read-only projections of the task collection for
// rendering. Nothing here is cached or written back onto a Task.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/BuzzLyutic/swipe-tasks/internal/model"
)

// OldAfter is the age past which a task is flagged as old.
const OldAfter = 24 * time.Hour

// FilterBySearch keeps tasks whose text contains query, ignoring case.
func FilterBySearch(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}
	q := strings.ToLower(query)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Text), q) {
			out = append(out, t)
		}
	}
	return out
}

// GroupByStatus partitions tasks into one bucket per status. Every status
// has a bucket, possibly empty, and each bucket keeps the input order.
func GroupByStatus(tasks []model.Task) map[model.Status][]model.Task {
	groups := make(map[model.Status][]model.Task, len(model.Statuses))
	for _, s := range model.Statuses {
		groups[s] = []model.Task{}
	}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

type Flags struct {
	IsOld    bool `json:"is_old"`
	IsUrgent bool `json:"is_urgent"`
}

func PriorityFlags(t model.Task, now time.Time) Flags {
	return Flags{
		IsOld:    now.Sub(t.Created()) > OldAfter,
		IsUrgent: strings.Contains(strings.ToLower(t.Text), "urgent") || strings.Contains(t.Text, "!"),
	}
}

// TimeAgo renders the distance between ts (Unix milliseconds) and now.
func TimeAgo(ts int64, now time.Time) string {
	diff := now.Sub(time.UnixMilli(ts))
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", days)
	}
}
