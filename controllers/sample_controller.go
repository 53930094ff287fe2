package controllers

import (
	"net/http"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

type SampleDataController struct {
	tasks         *store.TaskStore
	notifications *store.NotificationStore
	chat          *store.ChatLog
}

func NewSampleDataController(tasks *store.TaskStore, notifications *store.NotificationStore, chat *store.ChatLog) *SampleDataController {
	return &SampleDataController{tasks: tasks, notifications: notifications, chat: chat}
}

// Toggle 示例数据开关：开启时装入示例集，关闭时清空全部状态
func (c *SampleDataController) Toggle(ctx *gin.Context) {
	var req models.SampleDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Enabled {
		c.tasks.Reset(store.SampleTasks())
		c.notifications.Reset(store.SampleNotifications())
		c.chat.Reset(store.SampleChatMessages())
	} else {
		c.tasks.Reset(nil)
		c.notifications.Reset(nil)
		c.chat.Reset(nil)
	}

	config.Logger.Infow("切换示例数据", "enabled", req.Enabled)
	ctx.JSON(http.StatusOK, gin.H{"enabled": req.Enabled})
}
