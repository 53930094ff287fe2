package controllers

import (
	"net/http"

	"SmartTaskGo/services"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	schedules *services.ScheduleService
}

func NewScheduleController(schedules *services.ScheduleService) *ScheduleController {
	return &ScheduleController{schedules: schedules}
}

// GetView 获取同步控制器的视图模型
func (c *ScheduleController) GetView(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.schedules.View())
}

// Refresh 手动刷新列表和执行历史，两者互相独立
func (c *ScheduleController) Refresh(ctx *gin.Context) {
	c.schedules.RefreshSchedules(ctx.Request.Context())
	// 日志刷新失败静默：保留旧日志即可
	_ = c.schedules.RefreshLogs(ctx.Request.Context())
	ctx.JSON(http.StatusOK, c.schedules.View())
}

// Toggle 按服务端状态暂停或恢复，随后重新拉取作为事实来源
func (c *ScheduleController) Toggle(ctx *gin.Context) {
	c.schedules.Toggle(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.schedules.View())
}

// TriggerNow 手动触发一次执行
func (c *ScheduleController) TriggerNow(ctx *gin.Context) {
	status := c.schedules.TriggerNow(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, gin.H{
		"status": status,
		"view":   c.schedules.View(),
	})
}
