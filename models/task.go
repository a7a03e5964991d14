// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every accepted [Priority].
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Status of a task.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "inprogress"
	StatusFinished   Status = "finished"
)

// Statuses lists every accepted [Status].
var Statuses = []Status{StatusWaiting, StatusInProgress, StatusFinished}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Task is a todo item owned by exactly one user. A non-nil DeletedAt marks
// the task as soft-deleted.
type Task struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Desc      *string    `json:"desc,omitempty"`
	Priority  Priority   `json:"priority"`
	Status    Status     `json:"status"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Image     *string    `json:"image,omitempty"`
	DeletedAt *time.Time `json:"deletedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// IsDeleted reports whether the task has been soft-deleted.
func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
}

// IsOverdue reports whether the due date lies before now and the task is
// not finished. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}

	return now.After(*t.DueDate) && t.Status != StatusFinished
}

// TaskView is the outward projection of a [Task] with derived fields.
type TaskView struct {
	Task
	Overdue bool `json:"isOverdue"`
}

// NewTaskView projects t, computing IsOverdue against now.
func NewTaskView(t Task, now time.Time) TaskView {
	return TaskView{Task: t, Overdue: t.IsOverdue(now)}
}

// NewTaskViews projects a slice of tasks. The result is never nil.
func NewTaskViews(tasks []Task, now time.Time) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, NewTaskView(t, now))
	}
	return views
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// TaskPage is one page of a user's tasks.
type TaskPage struct {
	Tasks      []Task
	Pagination Pagination
}
