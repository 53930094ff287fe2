package store

import (
	"sync"

	"SmartTaskGo/models"
)

// NotificationStore 提醒通知集合，最新的插在最前
// 通知只会被标记已读，不会被删除
type NotificationStore struct {
	mu            sync.Mutex
	notifications []models.Notification
}

// NewNotificationStore 创建空的通知存储
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

// Push 头部插入，保持最新在前的顺序
func (s *NotificationStore) Push(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

// MarkRead 标记单条已读，单调操作，不会取消已读
func (s *NotificationStore) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead 全部标记已读，重复调用结果不变
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// UnreadCount 未读数量
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}

// List 返回全部通知的快照
func (s *NotificationStore) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.notifications...)
}

// Reset 整体替换（示例数据开关）
func (s *NotificationStore) Reset(notifications []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]models.Notification(nil), notifications...)
}
