package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/model"
	"github.com/BuzzLyutic/swipe-tasks/internal/repo"
	"github.com/BuzzLyutic/swipe-tasks/internal/service"
	"github.com/BuzzLyutic/swipe-tasks/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

type createRequest struct {
	Text string `json:"text"`
}

type createResponse struct {
	model.Task
	HapticMs int64 `json:"haptic_ms,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(w, r, &req); err != nil {
		h.logger.Debug("failed to decode create request", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hint := &service.HintHaptics{}
	task, ok := h.service.Create(service.WithHaptics(r.Context(), hint), req.Text)
	if !ok {
		respond.NoContent(w, r)
		return
	}

	w.Header().Set("Location", "/api/tasks/"+task.ID)
	respond.JSON(w, r, http.StatusCreated, createResponse{
		Task:     task,
		HapticMs: hint.Requested.Milliseconds(),
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks := h.service.List(r.Context(), r.URL.Query().Get("q"))
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.NoContent(w, r)
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.service.Complete(r.Context(), chi.URLParam(r, "id"))
	respond.NoContent(w, r)
}

func (h *TaskHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.service.Advance(r.Context(), chi.URLParam(r, "id"))
	respond.NoContent(w, r)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	respond.NoContent(w, r)
}

func (h *TaskHandler) Board(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.service.Board(r.Context(), r.URL.Query().Get("q")))
}

func (h *TaskHandler) Home(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, h.service.Home(r.Context(), r.URL.Query().Get("q")))
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
