package controllers

import (
	"net/http"
	"strings"

	"SmartTaskGo/models"
	"SmartTaskGo/services"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	agents *services.AgentService
	chat   *store.ChatLog
}

func NewChatController(agents *services.AgentService, chat *store.ChatLog) *ChatController {
	return &ChatController{agents: agents, chat: chat}
}

// SendMessage 直接对话：交给任务分析智能体处理
// 失败也会返回 200，错误以助手消息的形式出现在对话里
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "消息内容不能为空"})
		return
	}

	msg := c.agents.SendChatMessage(ctx.Request.Context(), req.Message)
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

// Analyze 手动触发任务分析
func (c *ChatController) Analyze(ctx *gin.Context) {
	msg, status := c.agents.AnalyzeTasks(ctx.Request.Context())
	if status != nil {
		ctx.JSON(http.StatusOK, gin.H{"status": status})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg})
}

// GetMessages 获取全部对话记录
func (c *ChatController) GetMessages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"messages": c.chat.Messages()})
}

// AgentStatus 当前智能体会话状态，供侧边栏指示灯使用
func (c *ChatController) AgentStatus(ctx *gin.Context) {
	active := c.agents.ActiveAgent()
	ctx.JSON(http.StatusOK, models.AgentStatusResponse{
		ActiveAgentID: active,
		Busy:          active != "",
	})
}
