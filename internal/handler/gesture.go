package handler

import (
	"net/http"

	"github.com/BuzzLyutic/swipe-tasks/pkg/respond"
)

type dragStartRequest struct {
	PointerID string  `json:"pointer_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	TaskID    string  `json:"task_id"`
}

type dragMoveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h *TaskHandler) DragStart(w http.ResponseWriter, r *http.Request) {
	var req dragStartRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.TaskID == "" {
		respond.Error(w, r, http.StatusBadRequest, "task_id is required")
		return
	}

	h.service.DragStart(r.Context(), req.PointerID, req.X, req.Y, req.TaskID)
	respond.NoContent(w, r)
}

// DragMove answers 204 when the movement is not a horizontal swipe; the
// client then lets the browser scroll normally.
func (h *TaskHandler) DragMove(w http.ResponseWriter, r *http.Request) {
	var req dragMoveRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p := h.service.DragMove(r.Context(), req.X, req.Y)
	if p == nil {
		respond.NoContent(w, r)
		return
	}
	respond.JSON(w, r, http.StatusOK, p)
}

func (h *TaskHandler) DragEnd(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.service.DragEnd(r.Context()))
}

func (h *TaskHandler) DragStatus(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]bool{"active": h.service.DragActive(r.Context())})
}
