package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/swipe-tasks/internal/gesture"
	"github.com/BuzzLyutic/swipe-tasks/internal/model"
	"github.com/BuzzLyutic/swipe-tasks/internal/repo"
	"github.com/BuzzLyutic/swipe-tasks/internal/service"
	"github.com/BuzzLyutic/swipe-tasks/internal/store"
)

func setupE2EServer(t *testing.T, backend repo.Backend) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	st := store.New(backend, logger)
	st.LoadInitial(context.Background())
	taskService := service.NewTaskService(st, gesture.NewInterpreter(logger), logger)

	server := httptest.NewServer(NewRouter(NewTaskHandler(taskService, logger), false))
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func listTasks(t *testing.T, baseURL string) []model.Task {
	t.Helper()
	resp, err := http.Get(baseURL + "/api/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []model.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	return tasks
}

func TestE2E_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.db")

	backend, err := repo.OpenSQLite(ctx, path)
	require.NoError(t, err)
	server := setupE2EServer(t, backend)

	// 1. Create two tasks
	resp := post(t, server.URL+"/api/tasks", map[string]string{"text": "water plants"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first model.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp.Body.Close()

	resp = post(t, server.URL+"/api/tasks", map[string]string{"text": "book flights!"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var second model.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	resp.Body.Close()

	// 2. Advance the first one twice: today -> next -> hold
	for i := 0; i < 2; i++ {
		resp = post(t, fmt.Sprintf("%s/api/tasks/%s/advance", server.URL, first.ID), nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}

	// 3. Swipe the second one to done
	resp = post(t, server.URL+"/api/gestures/start", map[string]interface{}{
		"pointer_id": "1", "x": 10, "y": 10, "task_id": second.ID,
	})
	resp.Body.Close()
	resp = post(t, server.URL+"/api/gestures/move", map[string]float64{"x": 200, "y": 12})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = post(t, server.URL+"/api/gestures/end", nil)
	resp.Body.Close()

	before := listTasks(t, server.URL)
	require.Len(t, before, 2)
	require.NoError(t, backend.Close())

	// 4. Reopen the database with a fresh process state
	reopened, err := repo.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	restarted := setupE2EServer(t, reopened)

	after := listTasks(t, restarted.URL)
	assert.Equal(t, before, after)
	assert.Equal(t, second.ID, after[0].ID)
	assert.Equal(t, model.StatusDone, after[0].Status)
	assert.Equal(t, model.StatusHold, after[1].Status)
}

func TestE2E_CorruptStorageStartsEmpty(t *testing.T) {
	backend := repo.NewMemoryBackend()
	require.NoError(t, backend.Set(context.Background(), store.DefaultKey, "<<not json>>"))

	server := setupE2EServer(t, backend)
	assert.Empty(t, listTasks(t, server.URL))

	resp := post(t, server.URL+"/api/tasks", map[string]string{"text": "fresh start"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	assert.Len(t, listTasks(t, server.URL), 1)
}

func TestConcurrent_CreateAssignsUniqueIDs(t *testing.T) {
	backend := repo.NewMemoryBackend()
	server := setupE2EServer(t, backend)

	const goroutines = 20
	var wg sync.WaitGroup
	codes := make([]int, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			data, _ := json.Marshal(map[string]string{"text": fmt.Sprintf("task %d", idx)})
			resp, err := http.Post(server.URL+"/api/tasks", "application/json", bytes.NewReader(data))
			if err != nil {
				return
			}
			codes[idx] = resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "request %d", i)
	}

	tasks := listTasks(t, server.URL)
	require.Len(t, tasks, goroutines)
	seen := map[string]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}

	// the last write holds the whole collection
	payload, err := backend.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	persisted, err := store.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, tasks, persisted)
}
