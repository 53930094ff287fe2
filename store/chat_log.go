package store

import (
	"encoding/json"
	"sync"
	"time"

	"SmartTaskGo/models"
	"SmartTaskGo/utils"
)

// ChatLog 对话记录，只追加的有序日志，消息不会被修改或删除
type ChatLog struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewChatLog 创建空的对话记录
func NewChatLog() *ChatLog {
	return &ChatLog{}
}

// Append 追加一条消息并返回其副本
func (l *ChatLog) Append(role models.ChatRole, content string, data json.RawMessage) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        utils.GenerateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Data:      data,
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
	return msg
}

// Messages 返回全部消息的快照，按追加顺序
func (l *ChatLog) Messages() []models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.ChatMessage(nil), l.messages...)
}

// Len 消息条数
func (l *ChatLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Reset 整体替换（示例数据开关）
func (l *ChatLog) Reset(messages []models.ChatMessage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append([]models.ChatMessage(nil), messages...)
}
