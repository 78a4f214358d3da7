package view

import (
	"time"

	"github.com/BuzzLyutic/swipe-tasks/internal/model"
)

// Card is a task together with the values derived from it for one render.
type Card struct {
	model.Task
	Flags
	TimeAgo string `json:"time_ago"`
}

func NewCard(t model.Task, now time.Time) Card {
	return Card{
		Task:    t,
		Flags:   PriorityFlags(t, now),
		TimeAgo: TimeAgo(t.CreatedAt, now),
	}
}

func cards(tasks []model.Task, now time.Time) []Card {
	out := make([]Card, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewCard(t, now))
	}
	return out
}

type Column struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
	Cards  []Card       `json:"cards"`
}

// Board is the four-column view over the search-filtered collection.
type Board struct {
	Query   string   `json:"query"`
	Columns []Column `json:"columns"`
}

func NewBoard(tasks []model.Task, query string, now time.Time) Board {
	groups := GroupByStatus(FilterBySearch(tasks, query))
	b := Board{Query: query, Columns: make([]Column, 0, len(model.Statuses))}
	for _, s := range model.Statuses {
		b.Columns = append(b.Columns, Column{
			Status: s,
			Count:  len(groups[s]),
			Cards:  cards(groups[s], now),
		})
	}
	return b
}

// Home is the capture screen over the search-filtered collection: today and
// hold cards in full, next and done only as counts.
type Home struct {
	Query     string `json:"query"`
	Today     []Card `json:"today"`
	Hold      []Card `json:"hold"`
	NextCount int    `json:"next_count"`
	DoneCount int    `json:"done_count"`
	Empty     bool   `json:"empty"`
}

func NewHome(tasks []model.Task, query string, now time.Time) Home {
	groups := GroupByStatus(FilterBySearch(tasks, query))
	h := Home{
		Query:     query,
		Today:     cards(groups[model.StatusToday], now),
		Hold:      cards(groups[model.StatusHold], now),
		NextCount: len(groups[model.StatusNext]),
		DoneCount: len(groups[model.StatusDone]),
	}
	h.Empty = len(h.Today) == 0 && len(h.Hold) == 0
	return h
}
