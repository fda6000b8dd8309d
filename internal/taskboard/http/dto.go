package http

import (
	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func toUser(u domain.PublicUser) tasksdk.User {
	return tasksdk.User{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toTask(t domain.Task) tasksdk.Task {
	items := make([]tasksdk.ChecklistItem, 0, len(t.Checklists))
	for _, c := range t.Checklists {
		items = append(items, tasksdk.ChecklistItem{Title: c.Title, Checked: c.Checked})
	}

	return tasksdk.Task{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		Checklists: items,
		DueDate:    t.DueDate,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
		IsExpired:  t.IsExpired,
	}
}

func toTasks(ts []domain.Task) []tasksdk.Task {
	out := make([]tasksdk.Task, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTask(t))
	}
	return out
}

func toAnalytics(a domain.Analytics) tasksdk.Analytics {
	return tasksdk.Analytics{
		Status: tasksdk.StatusCounts{
			Backlog:    a.Status.Backlog,
			Todo:       a.Status.Todo,
			InProgress: a.Status.InProgress,
			Done:       a.Status.Done,
		},
		Priorities: tasksdk.PriorityCounts{
			Low:      a.Priorities.Low,
			Moderate: a.Priorities.Moderate,
			High:     a.Priorities.High,
			Due:      a.Priorities.Due,
		},
	}
}

func fromTaskRequest(req tasksdk.TaskRequest) service.TaskInput {
	var items []domain.ChecklistItem
	if req.Checklists != nil {
		items = make([]domain.ChecklistItem, 0, len(req.Checklists))
		for _, c := range req.Checklists {
			items = append(items, domain.ChecklistItem{Title: c.Title, Checked: c.Checked})
		}
	}

	return service.TaskInput{
		Title:      req.Title,
		Status:     domain.Status(req.Status),
		Priority:   domain.Priority(req.Priority),
		Checklists: items,
		DueDate:    req.DueDate,
		CreatedAt:  req.CreatedAt,
	}
}
