package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/store"
	"SmartTaskGo/utils"
)

// 面向用户的固定文案，远端失败与传输故障只在措辞上区分
const (
	msgAgentFailure   = "I encountered an error processing your request. Please try again."
	msgTransportError = "Network error. Please check your connection and try again."

	defaultAnalysisMessage = "Analysis complete."
	defaultReminderText    = "You have a task that needs attention."
	defaultTaskName        = "Unknown Task"
	placeholder            = "N/A"
)

// AgentService 智能体会话控制器
// 会话状态机：Idle -> Active(agentID) -> Idle，同一时刻至多一个活跃会话，
// 无论成功失败都保证回到 Idle
type AgentService struct {
	invoker         AgentInvoker
	tasks           *store.TaskStore
	notifications   *store.NotificationStore
	chat            *store.ChatLog
	reconciler      *Reconciler
	taskAgentID     string
	reminderAgentID string

	activeMu      sync.Mutex
	activeAgentID string

	// 一次调用完成后对各存储的批量写入在该互斥下进行，
	// 读方看到的是要么全部生效要么全部未生效
	applyMu sync.Mutex
}

func NewAgentService(
	invoker AgentInvoker,
	tasks *store.TaskStore,
	notifications *store.NotificationStore,
	chat *store.ChatLog,
	taskAgentID, reminderAgentID string,
) *AgentService {
	return &AgentService{
		invoker:         invoker,
		tasks:           tasks,
		notifications:   notifications,
		chat:            chat,
		reconciler:      NewReconciler(tasks),
		taskAgentID:     taskAgentID,
		reminderAgentID: reminderAgentID,
	}
}

// ActiveAgent 当前活跃的智能体 ID，空串表示 Idle
func (s *AgentService) ActiveAgent() string {
	s.activeMu.Lock()
	defer s.activeMu.Unlock()
	return s.activeAgentID
}

// invoke 进入 Active(agentID)，等待协作方返回，退出前必定回到 Idle
func (s *AgentService) invoke(ctx context.Context, agentID, prompt string) (*InvokeResult, error) {
	s.activeMu.Lock()
	s.activeAgentID = agentID
	s.activeMu.Unlock()

	defer func() {
		s.activeMu.Lock()
		s.activeAgentID = ""
		s.activeMu.Unlock()
	}()

	return s.invoker.Invoke(ctx, prompt, agentID)
}

// SendChatMessage 直接对话：记录用户消息，调用任务分析智能体，
// 格式化结果并将建议合并进任务存储
// 所有失败都转化为对话里的一条助手消息，不向上冒泡
func (s *AgentService) SendChatMessage(ctx context.Context, text string) models.ChatMessage {
	text = strings.TrimSpace(text)
	s.chat.Append(models.RoleUser, text, nil)

	result, err := s.invoke(ctx, s.taskAgentID, text)
	if err != nil {
		config.Logger.Errorw("调用任务分析智能体失败", "error", err)
		return s.chat.Append(models.RoleAssistant, msgTransportError, nil)
	}
	if !result.Success || result.Response == nil {
		config.Logger.Warnw("任务分析智能体报告失败", "agentError", result.Error)
		return s.chat.Append(models.RoleAssistant, msgAgentFailure, nil)
	}

	var data models.TaskAgentResponse
	raw := result.Response.Result
	if err := json.Unmarshal(raw, &data); err != nil {
		config.Logger.Warnw("解析任务分析载荷失败", "error", err)
		return s.chat.Append(models.RoleAssistant, msgAgentFailure, nil)
	}

	content := FormatTaskAnalysis(&data)

	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	assistant := s.chat.Append(models.RoleAssistant, content, raw)
	if len(data.Tasks) > 0 {
		applied := s.reconciler.Apply(data.Tasks)
		config.Logger.Infow("应用任务建议",
			"suggested", len(data.Tasks),
			"applied", applied,
		)
	}
	return assistant
}

// AnalyzeTasks 手动触发的任务分析：把活跃任务拼成提示词走对话流程
// 没有活跃任务时返回提示状态，不发起调用
func (s *AgentService) AnalyzeTasks(ctx context.Context) (*models.ChatMessage, *models.StatusMessage) {
	active := s.tasks.ActiveTasks()
	if len(active) == 0 {
		return nil, &models.StatusMessage{
			Type: "info",
			Text: "No active tasks to analyze. Add some tasks first.",
		}
	}

	lines := make([]string, 0, len(active))
	for _, t := range active {
		desc := t.Description
		if desc == "" {
			desc = "No description"
		}
		deadline := t.Deadline
		if deadline == "" {
			deadline = "none"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (deadline: %s)", t.Title, desc, deadline))
	}
	prompt := "Analyze these tasks and suggest priorities, time estimates, and subtask breakdowns:\n" +
		strings.Join(lines, "\n")

	msg := s.SendChatMessage(ctx, prompt)
	return &msg, nil
}

// CheckReminders 手动触发的提醒检查：每条提醒生成一条未读通知，
// 有总结时额外追加一条助手消息；返回的状态里报告生成条数
func (s *AgentService) CheckReminders(ctx context.Context) models.StatusMessage {
	active := s.tasks.ActiveTasks()
	if len(active) == 0 {
		return models.StatusMessage{Type: "info", Text: "No active tasks for reminders."}
	}

	parts := make([]string, 0, len(active))
	for _, t := range active {
		deadline := t.Deadline
		if deadline == "" {
			deadline = "none"
		}
		parts = append(parts, fmt.Sprintf("%s (priority: %s, deadline: %s)", t.Title, t.Priority, deadline))
	}
	prompt := "Check these tasks and generate reminders: " + strings.Join(parts, "; ")

	result, err := s.invoke(ctx, s.reminderAgentID, prompt)
	if err != nil {
		config.Logger.Errorw("调用提醒智能体失败", "error", err)
		return models.StatusMessage{Type: "error", Text: "Error contacting reminder agent"}
	}
	if !result.Success || result.Response == nil {
		config.Logger.Warnw("提醒智能体报告失败", "agentError", result.Error)
		return models.StatusMessage{Type: "error", Text: "Failed to generate reminders"}
	}

	var data models.ReminderAgentResponse
	raw := result.Response.Result
	if err := json.Unmarshal(raw, &data); err != nil {
		config.Logger.Warnw("解析提醒载荷失败", "error", err)
		return models.StatusMessage{Type: "error", Text: "Failed to generate reminders"}
	}

	s.applyMu.Lock()
	for _, r := range data.Reminders {
		s.notifications.Push(buildNotification(r))
	}
	if data.Summary != "" {
		s.chat.Append(models.RoleAssistant, formatReminderCheck(&data), raw)
	}
	s.applyMu.Unlock()

	return models.StatusMessage{
		Type: "success",
		Text: fmt.Sprintf("%d reminder(s) generated", len(data.Reminders)),
	}
}

// buildNotification 按提醒条目创建通知，缺失字段使用显式兜底值
func buildNotification(r models.ReminderEntry) models.Notification {
	message := r.ReminderMessage
	if message == "" {
		message = defaultReminderText
	}
	taskName := r.TaskName
	if taskName == "" {
		taskName = defaultTaskName
	}
	priority := strings.ToLower(r.Priority)
	if !models.IsValidPriority(priority) {
		priority = string(models.PriorityMedium)
	}
	return models.Notification{
		ID:              utils.GenerateID(),
		Message:         message,
		TaskName:        taskName,
		Priority:        priority,
		Timestamp:       time.Now(),
		Read:            false,
		SuggestedAction: r.SuggestedAction,
	}
}
