package models

// TaskSuggestion 任务分析智能体给出的单条任务建议
type TaskSuggestion struct {
	TaskName      string   `json:"task_name"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimated_time"`
	Subtasks      []string `json:"subtasks"`
	Notes         string   `json:"notes"`
}

// WorkloadSummary 工作量汇总
type WorkloadSummary struct {
	TotalTasks         int    `json:"total_tasks"`
	UrgentCount        int    `json:"urgent_count"`
	HighCount          int    `json:"high_count"`
	MediumCount        int    `json:"medium_count"`
	LowCount           int    `json:"low_count"`
	EstimatedTotalTime string `json:"estimated_total_time"`
	BalanceStatus      string `json:"balance_status"`
}

// TaskAgentResponse 任务分析智能体的结构化响应
// 所有字段均为可选，缺失字段由格式化层兜底为占位符
type TaskAgentResponse struct {
	AnalysisType     string           `json:"analysis_type,omitempty"`
	Message          string           `json:"message,omitempty"`
	Tasks            []TaskSuggestion `json:"tasks,omitempty"`
	ProductivityTips []string         `json:"productivity_tips,omitempty"`
	WorkloadSummary  *WorkloadSummary `json:"workload_summary,omitempty"`
}

// ReminderEntry 提醒智能体给出的单条提醒
type ReminderEntry struct {
	TaskName        string `json:"task_name"`
	Priority        string `json:"priority"`
	Deadline        string `json:"deadline"`
	ReminderMessage string `json:"reminder_message"`
	UrgencyReason   string `json:"urgency_reason"`
	SuggestedAction string `json:"suggested_action"`
}

// ReminderAgentResponse 提醒智能体的结构化响应
type ReminderAgentResponse struct {
	Reminders               []ReminderEntry `json:"reminders,omitempty"`
	Summary                 string          `json:"summary,omitempty"`
	NextCheckRecommendation string          `json:"next_check_recommendation,omitempty"`
}
