package params

import "fmt"

// UnsupportedTaskError is returned for a task outside the recognized set.
type UnsupportedTaskError struct {
	Task string
}

func (e *UnsupportedTaskError) Error() string {
	return fmt.Sprintf(
		"task not recognized: %q, supported tasks are \"summarization\" and \"question_answer\"",
		e.Task,
	)
}
