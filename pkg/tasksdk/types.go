package tasksdk

import (
	"time"
)

// Envelope is the success body of every JSON response.
type Envelope[T any] struct {
	Status  string `json:"status" example:"success"`
	Results *int   `json:"results,omitempty"`
	Data    T      `json:"data"`
}

// ErrorResponse is the failure body of every JSON response.
type ErrorResponse struct {
	// Status is "fail" for 4xx responses and "error" for 5xx.
	Status  string `json:"status" example:"fail"`
	Message string `json:"message" example:"Task not found"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Email           string `json:"email" example:"ada@example.com"`
	Name            string `json:"name" example:"Ada"`
	Password        string `json:"password" example:"hunter22"`
	ConfirmPassword string `json:"confirmPassword" example:"hunter22"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"hunter22"`
}

// User is the public projection of an account. It never carries the password
// hash.
type User struct {
	ID    string `json:"id" example:"01J8Z5Q4M3V9W6X2Y7T1R0S8PK"`
	Email string `json:"email" example:"ada@example.com"`
	Name  string `json:"name" example:"Ada"`
}

type LoginResponse struct {
	Info      User      `json:"info"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ============================================================================
// Tasks
// ============================================================================

type ChecklistItem struct {
	Title   string `json:"title" example:"Draft outline"`
	Checked bool   `json:"checked"`
}

// TaskRequest is the body of create and update calls. Update replaces every
// field; CreatedAt is ignored on update.
type TaskRequest struct {
	Title      string          `json:"title" example:"Write report"`
	Status     string          `json:"status" enums:"backlog,todo,inProgress,done" example:"todo"`
	Priority   string          `json:"priority" enums:"low,moderate,high" example:"high"`
	Checklists []ChecklistItem `json:"checklists"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
}

type Task struct {
	ID         string          `json:"id" example:"01J8Z5Q4M3V9W6X2Y7T1R0S8PK"`
	Title      string          `json:"title" example:"Write report"`
	Status     string          `json:"status" example:"todo"`
	Priority   string          `json:"priority" example:"high"`
	Checklists []ChecklistItem `json:"checklists"`
	DueDate    *time.Time      `json:"dueDate"`
	CreatedBy  string          `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	IsExpired  bool            `json:"isExpired"`
}

// TaskData wraps a single task: {"task": {...}}.
type TaskData struct {
	Task Task `json:"task"`
}

// TaskListData wraps a task list: {"tasks": [...]}.
type TaskListData struct {
	Tasks []Task `json:"tasks"`
}

type StatusCounts struct {
	Backlog    int `json:"backlog"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// PriorityCounts counts each task once by priority. Due additionally counts
// expired tasks, so it overlaps the other buckets.
type PriorityCounts struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
	Due      int `json:"due"`
}

type Analytics struct {
	Status     StatusCounts   `json:"status"`
	Priorities PriorityCounts `json:"priorities"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"dev"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
