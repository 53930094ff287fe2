package services

import (
	"fmt"
	"strings"

	"SmartTaskGo/models"
)

// FormatTaskAnalysis 将任务分析载荷格式化为固定顺序的叙述文本：
// 消息、Task Suggestions、Productivity Tips、Workload Summary
// 缺失字段渲染为字面量 "N/A"，不静默省略，保证输出形状可预期
func FormatTaskAnalysis(data *models.TaskAgentResponse) string {
	var sb strings.Builder

	if data.Message != "" {
		sb.WriteString(data.Message)
	} else {
		sb.WriteString(defaultAnalysisMessage)
	}

	if len(data.Tasks) > 0 {
		sb.WriteString("\n\n### Task Suggestions\n")
		for _, t := range data.Tasks {
			sb.WriteString(fmt.Sprintf("\n- **%s** - Priority: %s, Est: %s",
				orDefault(t.TaskName, "Task"),
				orDefault(t.Priority, placeholder),
				orDefault(t.EstimatedTime, placeholder),
			))
			if t.Notes != "" {
				sb.WriteString(" -- " + t.Notes)
			}
			for _, sub := range t.Subtasks {
				sb.WriteString("\n  - " + sub)
			}
		}
	}

	if len(data.ProductivityTips) > 0 {
		sb.WriteString("\n\n### Productivity Tips\n")
		for _, tip := range data.ProductivityTips {
			sb.WriteString("\n- " + tip)
		}
	}

	if w := data.WorkloadSummary; w != nil {
		sb.WriteString(fmt.Sprintf(
			"\n\n### Workload Summary\nTotal: %d tasks | Urgent: %d | High: %d | Medium: %d | Low: %d\nEstimated time: %s | Balance: %s",
			w.TotalTasks, w.UrgentCount, w.HighCount, w.MediumCount, w.LowCount,
			orDefault(w.EstimatedTotalTime, placeholder),
			orDefault(w.BalanceStatus, placeholder),
		))
	}

	return sb.String()
}

// formatReminderCheck 提醒检查的对话消息，仅在载荷带有总结时使用
func formatReminderCheck(data *models.ReminderAgentResponse) string {
	next := ""
	if data.NextCheckRecommendation != "" {
		next = fmt.Sprintf("**Next check:** %s", data.NextCheckRecommendation)
	}
	return fmt.Sprintf("### Reminder Check\n\n%s\n\n%s", data.Summary, next)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
