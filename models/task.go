package models

import (
	"time"
)

// TaskPriority 任务优先级
type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// IsValidPriority 校验优先级是否为四个合法等级之一，调用方负责先转小写
func IsValidPriority(p string) bool {
	switch TaskPriority(p) {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TaskStatus 任务状态，completed 为终态，不可逆转
type TaskStatus string

const (
	StatusToday     TaskStatus = "today"
	StatusUpcoming  TaskStatus = "upcoming"
	StatusCompleted TaskStatus = "completed"
)

// Task 任务模型
// 不变式：CompletedAt 非空当且仅当 Status 为 completed
type Task struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Deadline      string       `json:"deadline"` // 日历日期，格式 2006-01-02，可为空
	Priority      TaskPriority `json:"priority"`
	Status        TaskStatus   `json:"status"`
	EstimatedTime string       `json:"estimatedTime"`
	Subtasks      []SubTask    `json:"subtasks"`
	Tags          []string     `json:"tags"`
	CreatedAt     time.Time    `json:"createdAt"`
	CompletedAt   *time.Time   `json:"completedAt"`
}
