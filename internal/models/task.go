package models

import "time"

// TaskModel represents a to-do item.
type TaskModel struct {
	ID          string    `bson:"_id"         json:"id"`
	Title       string    `bson:"title"       json:"title"`
	Description string    `bson:"description" json:"description"`
	Completed   bool      `bson:"completed"   json:"completed"`
	CreatedAt   time.Time `bson:"createdAt"   json:"createdAt"`
}

func (TaskModel) CollectionName() string { return "tasks" }
