package models

import "time"

// Notification 提醒通知模型
// TaskName 只是自由文本关联，不是外键，可能对应不到存活的任务
type Notification struct {
	ID              string    `json:"id"`
	Message         string    `json:"message"`
	TaskName        string    `json:"taskName"`
	Priority        string    `json:"priority"`
	Timestamp       time.Time `json:"timestamp"`
	Read            bool      `json:"read"` // 单调 false→true，不会被取消已读
	SuggestedAction string    `json:"suggestedAction,omitempty"`
}
