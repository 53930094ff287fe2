package controllers

import (
	"net/http"

	"SmartTaskGo/services"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notifications *store.NotificationStore
	agents        *services.AgentService
}

func NewNotificationController(notifications *store.NotificationStore, agents *services.AgentService) *NotificationController {
	return &NotificationController{notifications: notifications, agents: agents}
}

// List 获取全部通知及未读数
func (c *NotificationController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"notifications": c.notifications.List(),
		"unreadCount":   c.notifications.UnreadCount(),
	})
}

// MarkRead 标记单条已读
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	c.notifications.MarkRead(ctx.Param("id"))
	ctx.JSON(http.StatusOK, gin.H{"unreadCount": c.notifications.UnreadCount()})
}

// MarkAllRead 全部标记已读
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	c.notifications.MarkAllRead()
	ctx.JSON(http.StatusOK, gin.H{"unreadCount": c.notifications.UnreadCount()})
}

// CheckReminders 手动触发提醒检查
func (c *NotificationController) CheckReminders(ctx *gin.Context) {
	status := c.agents.CheckReminders(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{
		"status":      status,
		"unreadCount": c.notifications.UnreadCount(),
	})
}
