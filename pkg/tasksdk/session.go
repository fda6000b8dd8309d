package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Session is an authenticated view of the API. Tokens are not refreshable,
// so a Session is only good until ExpiresAt.
type Session struct {
	client *SDKClient

	token     string
	expiresAt time.Time
	user      User
}

func (s *Session) Token() string        { return s.token }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the identity returned at login.
func (s *Session) User() User { return s.user }

// Me fetches the caller's identity from the server.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/users/me", s.token, nil)
	if err != nil {
		return nil, err
	}

	user, err := decodeData[User](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTasks returns the caller's tasks created in the last rangeDays days,
// counting today. rangeDays <= 0 leaves the server default of 7.
func (s *Session) ListTasks(ctx context.Context, rangeDays int) ([]Task, error) {
	path := "/api/v1/tasks"
	if rangeDays > 0 {
		path += "?" + url.Values{"range": {strconv.Itoa(rangeDays)}}.Encode()
	}

	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[TaskListData](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return data.Tasks, nil
}

func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (*Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/tasks", s.token, req)
	if err != nil {
		return nil, err
	}
	return decodeTask(resp, http.StatusCreated)
}

func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, taskPath(id), s.token, nil)
	if err != nil {
		return nil, err
	}
	return decodeTask(resp, http.StatusOK)
}

// UpdateTask replaces every editable field of the task.
func (s *Session) UpdateTask(ctx context.Context, id string, req TaskRequest) (*Task, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPatch, taskPath(id), s.token, req)
	if err != nil {
		return nil, err
	}
	return decodeTask(resp, http.StatusOK)
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, taskPath(id), s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Analytics returns status and priority counters over all the caller's tasks.
func (s *Session) Analytics(ctx context.Context) (*Analytics, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/tasks/analytics", s.token, nil)
	if err != nil {
		return nil, err
	}

	a, err := decodeData[Analytics](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func taskPath(id string) string {
	return "/api/v1/tasks/" + url.PathEscape(id)
}

func decodeTask(resp *http.Response, expectedStatus int) (*Task, error) {
	data, err := decodeData[TaskData](resp, expectedStatus)
	if err != nil {
		return nil, err
	}
	return &data.Task, nil
}
