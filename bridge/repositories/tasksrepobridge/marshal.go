package tasksrepobridge

import (
	"time"

	"github.com/taskward/taskward/core/repositories/tasksrepo"
)

// MarshalToBridge converts a repository task to its wire representation.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		TaskID:      task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of repository tasks to wire models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input.
// The authenticated caller becomes the owner.
func MarshalCreateToRepository(input CreateTaskRequest, ownerID string) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		UserID:      ownerID,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input.
func MarshalUpdateToRepository(input UpdateTaskRequest) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
}
