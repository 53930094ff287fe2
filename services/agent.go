package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// AgentResponse 智能体响应载荷
type AgentResponse struct {
	Result json.RawMessage `json:"result"`
}

// InvokeResult 单次智能体调用的结果
// Success 为 false 表示远端明确报告了失败；传输层故障以 error 返回
type InvokeResult struct {
	Success  bool           `json:"success"`
	Response *AgentResponse `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// AgentInvoker 智能体调用协作方，单次请求/响应，无流式
type AgentInvoker interface {
	Invoke(ctx context.Context, prompt string, agentID string) (*InvokeResult, error)
}

// AgentClient 基于 OpenAI 兼容接口的智能体客户端
// 两个智能体共用一个模型客户端，按 agentID 选择系统提示词
type AgentClient struct {
	model           llms.Model
	taskAgentID     string
	reminderAgentID string
}

func NewAgentClient(apiKey, apiEndpoint, taskAgentID, reminderAgentID string) (*AgentClient, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("deepseek/deepseek-v3"),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent client: %w", err)
	}

	return &AgentClient{
		model:           model,
		taskAgentID:     taskAgentID,
		reminderAgentID: reminderAgentID,
	}, nil
}

// Invoke 发送提示词并等待结构化响应
// 模型输出不是合法 JSON 时按远端失败处理，不作为传输错误
func (c *AgentClient) Invoke(ctx context.Context, prompt string, agentID string) (*InvokeResult, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(c.systemPrompt(agentID))},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := c.model.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return &InvokeResult{Success: false, Error: "empty completion"}, nil
	}

	raw := strings.TrimSpace(response.Choices[0].Content)
	if !json.Valid([]byte(raw)) {
		return &InvokeResult{Success: false, Error: "agent returned malformed payload"}, nil
	}

	return &InvokeResult{
		Success:  true,
		Response: &AgentResponse{Result: json.RawMessage(raw)},
	}, nil
}

func (c *AgentClient) systemPrompt(agentID string) string {
	switch agentID {
	case c.reminderAgentID:
		return `You are Smart Reminder, an agent that reviews a user's task list and generates reminders.

Respond with a single JSON object, no surrounding text. Fields:
- reminders: array of reminder objects
  - task_name: name of the task the reminder refers to
  - priority: one of urgent, high, medium, low
  - deadline: the task deadline if known
  - reminder_message: one short sentence telling the user what needs attention
  - urgency_reason: why this task is urgent right now
  - suggested_action: one concrete next step
- summary: short overall summary of the reminder check
- next_check_recommendation: when the user should check again

Only generate reminders for tasks that actually need attention.`
	default:
		return `You are Task Intelligence, an agent that analyzes a user's task list and suggests priorities, time estimates and subtask breakdowns.

Respond with a single JSON object, no surrounding text. Fields:
- message: a short narrative answer to the user's request
- tasks: array of task suggestions
  - task_name: name matching one of the user's tasks
  - priority: one of urgent, high, medium, low
  - estimated_time: free-text duration, e.g. "2 hours"
  - subtasks: array of subtask title strings
  - notes: short remark about the task
- productivity_tips: array of short tip strings
- workload_summary: object with total_tasks, urgent_count, high_count, medium_count, low_count, estimated_total_time, balance_status

Never invent tasks the user did not mention.`
	}
}
