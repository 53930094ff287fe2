package controllers

import (
	"net/http"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	tasks *store.TaskStore
}

func NewTaskController(tasks *store.TaskStore) *TaskController {
	return &TaskController{tasks: tasks}
}

// CreateTask 创建任务
// 标题为空是校验拒绝：存储层静默不动，HTTP 边界返回 400
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req models.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	task, ok := c.tasks.Add(req)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "任务标题不能为空"})
		return
	}

	config.Logger.Infow("创建任务", "taskID", task.ID, "status", task.Status)
	ctx.JSON(http.StatusOK, gin.H{
		"task":   task,
		"status": models.StatusMessage{Type: "success", Text: "Task added successfully"},
	})
}

// GetBoard 获取看板分区视图，支持单值优先级过滤
func (c *TaskController) GetBoard(ctx *gin.Context) {
	priority := ctx.DefaultQuery("priority", "all")
	ctx.JSON(http.StatusOK, c.tasks.Board(priority))
}

// CompleteTask 完成任务，对已完成任务重复调用是无副作用的
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	id := ctx.Param("id")
	c.tasks.Complete(id)
	ctx.JSON(http.StatusOK, c.tasks.Board(ctx.DefaultQuery("priority", "all")))
}

// DeleteTask 删除任务及其子任务
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	id := ctx.Param("id")
	c.tasks.Delete(id)
	ctx.JSON(http.StatusOK, c.tasks.Board(ctx.DefaultQuery("priority", "all")))
}

// ToggleSubtask 翻转子任务完成状态
func (c *TaskController) ToggleSubtask(ctx *gin.Context) {
	taskID := ctx.Param("id")
	subtaskID := ctx.Param("subtaskId")
	c.tasks.ToggleSubtask(taskID, subtaskID)
	ctx.JSON(http.StatusOK, c.tasks.Board(ctx.DefaultQuery("priority", "all")))
}

// GetInsights 获取数据洞察
func (c *TaskController) GetInsights(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.tasks.Insights())
}
