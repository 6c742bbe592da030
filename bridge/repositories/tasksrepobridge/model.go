package tasksrepobridge

import (
	"encoding/json"
)

// Task is the wire representation of a task record.
type Task struct {
	TaskID      string `json:"taskId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func (t Task) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

// CreateTaskRequest is the payload for creating a task. The owner comes from
// the session, never from the body. Title, description, and status are
// uninterpreted strings and may be empty.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is the payload for a partial update. Only these three
// fields may change; anything else in the body is ignored.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
