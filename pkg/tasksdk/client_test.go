package tasksdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginAndSessionCalls(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ada@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(Envelope[LoginResponse]{
			Status: "success",
			Data: LoginResponse{
				Info:      User{ID: "u1", Email: req.Email, Name: "Ada"},
				Token:     "tok",
				ExpiresAt: expires,
			},
		})
	})
	mux.HandleFunc("GET /api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "3", r.URL.Query().Get("range"))

		n := 1
		_ = json.NewEncoder(w).Encode(Envelope[TaskListData]{
			Status:  "success",
			Results: &n,
			Data:    TaskListData{Tasks: []Task{{ID: "t1", Title: "X"}}},
		})
	})
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "t1" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Status: "fail", Message: "Task not found"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := NewSDKClient(srv.URL + "/")

	session, err := client.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, expires, session.ExpiresAt())
	require.Equal(t, "Ada", session.User().Name)

	tasks, err := session.ListTasks(ctx, 3)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t1", tasks[0].ID)

	require.NoError(t, session.DeleteTask(ctx, "t1"))

	err = session.DeleteTask(ctx, "t2")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Task not found", apiErr.Message)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: http.StatusBadGateway}
	err := parseErrorResponse(resp, []byte("<html>bad gateway</html>"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "error", apiErr.Status)
	require.Contains(t, apiErr.Message, "Bad Gateway")

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}
