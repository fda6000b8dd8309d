/*
Package tasksdk provides a Go client for the taskboard HTTP API, plus the
wire types the server itself encodes.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (register, login, health checks)
  - Session: operations that need a session token

	client := tasksdk.NewSDKClient("http://localhost:8080")

	_, err := client.Register(ctx, tasksdk.RegisterRequest{
		Email:           "ada@example.com",
		Name:            "Ada",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})

	session, err := client.Login(ctx, "ada@example.com", "hunter22")

	task, err := session.CreateTask(ctx, tasksdk.TaskRequest{
		Title:    "Write report",
		Status:   "todo",
		Priority: "high",
	})

	tasks, err := session.ListTasks(ctx, 7)
	stats, err := session.Analytics(ctx)

Sessions are not refreshed. Once the token expires every call fails with a
401 *APIError and the caller has to log in again.

# Errors

Every non-success response is returned as an *APIError carrying the HTTP
status code and the server's message:

	var apiErr *tasksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// task is gone or belongs to someone else
	}
*/
package tasksdk
