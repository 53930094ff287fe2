package store

import (
	"time"

	"SmartTaskGo/models"
	"SmartTaskGo/utils"
)

// 示例数据，供前端的 Sample Data 开关使用

func SampleTasks() []models.Task {
	completedAt := mustParse("2026-02-25T16:00:00Z")
	return []models.Task{
		{
			ID: utils.GenerateID(), Title: "Finalize quarterly report",
			Description: "Complete and submit Q4 financial summary to management",
			Deadline:    "2026-02-27", Priority: models.PriorityUrgent, Status: models.StatusToday,
			EstimatedTime: "3 hours",
			Subtasks: []models.SubTask{
				{ID: utils.GenerateID(), Title: "Gather financial data", Completed: true},
				{ID: utils.GenerateID(), Title: "Create charts and graphs"},
				{ID: utils.GenerateID(), Title: "Write executive summary"},
			},
			Tags:      []string{"finance", "report"},
			CreatedAt: mustParse("2026-02-24T09:00:00Z"),
		},
		{
			ID: utils.GenerateID(), Title: "Review pull requests",
			Description: "Review and merge pending PRs for the sprint",
			Deadline:    "2026-02-26", Priority: models.PriorityHigh, Status: models.StatusToday,
			EstimatedTime: "1.5 hours",
			Subtasks: []models.SubTask{
				{ID: utils.GenerateID(), Title: "PR #142 - Auth module"},
				{ID: utils.GenerateID(), Title: "PR #145 - Dashboard UI"},
			},
			Tags:      []string{"development"},
			CreatedAt: mustParse("2026-02-25T10:00:00Z"),
		},
		{
			ID: utils.GenerateID(), Title: "Prepare presentation slides",
			Description: "Create slides for Friday team meeting on project roadmap",
			Deadline:    "2026-02-28", Priority: models.PriorityMedium, Status: models.StatusUpcoming,
			EstimatedTime: "2 hours",
			Subtasks:      []models.SubTask{},
			Tags:          []string{"meeting", "planning"},
			CreatedAt:     mustParse("2026-02-25T14:00:00Z"),
		},
		{
			ID: utils.GenerateID(), Title: "Update documentation",
			Description: "Update API docs with new endpoints from v2.1 release",
			Deadline:    "2026-03-01", Priority: models.PriorityLow, Status: models.StatusUpcoming,
			EstimatedTime: "1 hour",
			Subtasks:      []models.SubTask{},
			Tags:          []string{"docs"},
			CreatedAt:     mustParse("2026-02-26T08:00:00Z"),
		},
		{
			ID: utils.GenerateID(), Title: "Fix login page bug",
			Description: "Resolve the redirect issue on login timeout",
			Deadline:    "2026-02-25", Priority: models.PriorityHigh, Status: models.StatusCompleted,
			EstimatedTime: "45 min",
			Subtasks: []models.SubTask{
				{ID: utils.GenerateID(), Title: "Reproduce the issue", Completed: true},
				{ID: utils.GenerateID(), Title: "Fix redirect logic", Completed: true},
				{ID: utils.GenerateID(), Title: "Add unit tests", Completed: true},
			},
			Tags:        []string{"bugfix"},
			CreatedAt:   mustParse("2026-02-23T11:00:00Z"),
			CompletedAt: &completedAt,
		},
	}
}

func SampleNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:              utils.GenerateID(),
			Message:         "Quarterly report deadline is tomorrow. Start now to avoid rushing.",
			TaskName:        "Finalize quarterly report",
			Priority:        string(models.PriorityUrgent),
			Timestamp:       mustParse("2026-02-26T10:00:00Z"),
			SuggestedAction: "Begin gathering financial data immediately",
		},
		{
			ID:              utils.GenerateID(),
			Message:         "You have 2 pending pull requests that need attention.",
			TaskName:        "Review pull requests",
			Priority:        string(models.PriorityHigh),
			Timestamp:       mustParse("2026-02-26T08:30:00Z"),
			SuggestedAction: "Allocate 90 minutes for thorough code review",
		},
	}
}

func SampleChatMessages() []models.ChatMessage {
	return []models.ChatMessage{
		{
			ID: utils.GenerateID(), Role: models.RoleUser,
			Content:   "What tasks should I focus on today?",
			Timestamp: mustParse("2026-02-26T09:00:00Z"),
		},
		{
			ID: utils.GenerateID(), Role: models.RoleAssistant,
			Content: "Based on your current workload, I recommend prioritizing:\n\n" +
				"1. **Finalize quarterly report** - This is urgent with a deadline tomorrow. Start with gathering the financial data.\n" +
				"2. **Review pull requests** - These are blocking other team members.\n\n" +
				"Your workload is slightly heavy today with approximately 4.5 hours of focused work needed.",
			Timestamp: mustParse("2026-02-26T09:01:00Z"),
		},
	}
}

func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
