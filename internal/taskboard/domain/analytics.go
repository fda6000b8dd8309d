package domain

type StatusCounts struct {
	Backlog    int
	Todo       int
	InProgress int
	Done       int
}

type PriorityCounts struct {
	Low      int
	Moderate int
	High     int
	Due      int
}

type Analytics struct {
	Status     StatusCounts
	Priorities PriorityCounts
}

// Add counts t once in its status bucket, once in its priority bucket and,
// when it is expired, once more under Due.
func (a *Analytics) Add(t Task) {
	switch t.Status {
	case StatusBacklog:
		a.Status.Backlog++
	case StatusTodo:
		a.Status.Todo++
	case StatusInProgress:
		a.Status.InProgress++
	case StatusDone:
		a.Status.Done++
	}

	switch t.Priority {
	case PriorityLow:
		a.Priorities.Low++
	case PriorityModerate:
		a.Priorities.Moderate++
	case PriorityHigh:
		a.Priorities.High++
	}

	if t.IsExpired {
		a.Priorities.Due++
	}
}
