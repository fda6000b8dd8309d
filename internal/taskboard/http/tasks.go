package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/metrics"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// TasksHandler serves the owner-scoped task routes. Every route sits behind
// the authn middleware, so the principal is always present.
type TasksHandler struct {
	TaskService *service.TaskService
	Metrics     metrics.Recorder
}

// HandleList godoc
//
//	@Summary		List tasks
//	@Description	Tasks created by the caller in the last `range` days, counting today (UTC).
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			range	query		int										false	"Window in days"	default(7)
//	@Success		200		{object}	tasksdk.Envelope[tasksdk.TaskListData]	"Tasks in the window"
//	@Failure		400		{object}	tasksdk.ErrorResponse					"range is not an integer"
//	@Failure		401		{object}	tasksdk.ErrorResponse					"Not logged in"
//	@Router			/api/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rangeDays := service.DefaultRangeDays
	if raw := r.URL.Query().Get("range"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, msgBadRange)
			return
		}
		rangeDays = n
	}

	tasks, err := h.TaskService.ListTasks(r.Context(), callerID(r), rangeDays)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteList(w, "tasks", toTasks(tasks))
}

// HandleCreate godoc
//
//	@Summary		Create task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.TaskRequest					true	"Task"
//	@Success		201		{object}	tasksdk.Envelope[tasksdk.TaskData]	"Created task"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"Invalid title, status or priority"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"Not logged in"
//	@Router			/api/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.TaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.TaskService.CreateTask(r.Context(), callerID(r), fromTaskRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordTaskMutation("create")
	httpx.WriteData(w, http.StatusCreated, tasksdk.TaskData{Task: toTask(task)})
}

// HandleGet godoc
//
//	@Summary		Get task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskId	path		string								true	"Task ID"
//	@Success		200		{object}	tasksdk.Envelope[tasksdk.TaskData]	"Task"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"Not logged in"
//	@Failure		404		{object}	tasksdk.ErrorResponse				"Task not found"
//	@Router			/api/v1/tasks/{taskId} [get].
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	task, err := h.TaskService.GetTask(r.Context(), callerID(r), r.PathValue("taskId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, tasksdk.TaskData{Task: toTask(task)})
}

// HandleUpdate godoc
//
//	@Summary		Update task
//	@Description	Replaces title, status, priority, checklists and due date. Tasks owned by someone else are reported as not found.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskId	path		string								true	"Task ID"
//	@Param			body	body		tasksdk.TaskRequest					true	"Task"
//	@Success		200		{object}	tasksdk.Envelope[tasksdk.TaskData]	"Updated task"
//	@Failure		400		{object}	tasksdk.ErrorResponse				"Invalid title, status or priority"
//	@Failure		401		{object}	tasksdk.ErrorResponse				"Not logged in"
//	@Failure		404		{object}	tasksdk.ErrorResponse				"Task not found"
//	@Router			/api/v1/tasks/{taskId} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.TaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.TaskService.UpdateTask(r.Context(), callerID(r), r.PathValue("taskId"), fromTaskRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordTaskMutation("update")
	httpx.WriteData(w, http.StatusOK, tasksdk.TaskData{Task: toTask(task)})
}

// HandleDelete godoc
//
//	@Summary		Delete task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			taskId	path	string	true	"Task ID"
//	@Success		204		"Deleted"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"Not logged in"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"Task not found"
//	@Router			/api/v1/tasks/{taskId} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.DeleteTask(r.Context(), callerID(r), r.PathValue("taskId")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordTaskMutation("delete")
	w.WriteHeader(http.StatusNoContent)
}

// HandleAnalytics godoc
//
//	@Summary		Task analytics
//	@Description	Status and priority counts over all of the caller's tasks. `due` counts expired tasks on top of their priority bucket.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.Envelope[tasksdk.Analytics]	"Counters"
//	@Failure		401	{object}	tasksdk.ErrorResponse				"Not logged in"
//	@Router			/api/v1/tasks/analytics [get].
func (h *TasksHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	a, err := h.TaskService.Analytics(r.Context(), callerID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, toAnalytics(a))
}

func callerID(r *http.Request) string {
	p, _ := httpx.PrincipalFromContext(r.Context())
	return p.ID
}
