package models

import "time"

// Schedule 定时任务镜像，权威状态在远端执行器，本地仅缓存展示
type Schedule struct {
	ID             string     `json:"id"`
	IsActive       bool       `json:"is_active"`
	CronExpression string     `json:"cron_expression"`
	Timezone       string     `json:"timezone"`
	NextRunTime    *time.Time `json:"next_run_time"`
	LastRunAt      *time.Time `json:"last_run_at"`
	LastRunSuccess *bool      `json:"last_run_success"`
}

// ExecutionLog 执行历史镜像，只读，最近的排在最前
type ExecutionLog struct {
	ID           string    `json:"id"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	ExecutedAt   time.Time `json:"executed_at"`
}
