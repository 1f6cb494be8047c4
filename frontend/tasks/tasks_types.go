package tasks

import "sampark/models"

// MoveRequest is the body of a drop onto the board.
// An empty destination means the card was dropped outside every column.
type MoveRequest struct {
	Destination string `json:"destination"`
}

// Column is one kanban column.
type Column struct {
	ID    models.TaskStatus `json:"id"`
	Title string            `json:"title"`
	Tasks []models.Task     `json:"tasks"`
}

// MoveResult reports what a drop did.
type MoveResult struct {
	Moved bool        `json:"moved"`
	Task  models.Task `json:"task"`
}
