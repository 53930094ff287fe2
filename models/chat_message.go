package models

import (
	"encoding/json"
	"time"
)

// ChatRole 消息角色
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage 对话消息，只追加，不修改不删除
// Data 保留智能体返回的原始结构化载荷，用于审计和调试
type ChatMessage struct {
	ID        string          `json:"id"`
	Role      ChatRole        `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}
