package models

// StatusMessage 用户可见的状态提示
type StatusMessage struct {
	Type string `json:"type"` // success, error, info
	Text string `json:"text"`
}

// TaskBoardResponse 看板响应结构体，三个分区按插入顺序排列
// 各计数始终等于过滤后对应分区的长度
type TaskBoardResponse struct {
	Today          []Task `json:"today"`
	Upcoming       []Task `json:"upcoming"`
	Completed      []Task `json:"completed"`
	TodayCount     int    `json:"todayCount"`
	UpcomingCount  int    `json:"upcomingCount"`
	CompletedCount int    `json:"completedCount"`
}

// InsightsResponse 数据洞察响应结构体
type InsightsResponse struct {
	UrgentCount       int `json:"urgentCount"`
	HighCount         int `json:"highCount"`
	MediumCount       int `json:"mediumCount"`
	LowCount          int `json:"lowCount"`
	TotalTasks        int `json:"totalTasks"`
	TotalActive       int `json:"totalActive"`
	CompletedCount    int `json:"completedCount"`
	CompletionRate    int `json:"completionRate"`
	ProductivityScore int `json:"productivityScore"`
}

// ScheduleViewResponse 定时任务同步视图模型
type ScheduleViewResponse struct {
	Schedules  []Schedule     `json:"schedules"`
	ScheduleID string         `json:"scheduleId"`
	Logs       []ExecutionLog `json:"logs"`
	Loading    bool           `json:"loading"`
	Error      string         `json:"error,omitempty"`
	CronHuman  string         `json:"cronHuman,omitempty"`
}

// AgentStatusResponse 智能体会话状态响应结构体
type AgentStatusResponse struct {
	ActiveAgentID string `json:"activeAgentId"`
	Busy          bool   `json:"busy"`
}
