package routes

import (
	"SmartTaskGo/controllers"
	"SmartTaskGo/services"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	tasks *store.TaskStore,
	notifications *store.NotificationStore,
	chat *store.ChatLog,
	agents *services.AgentService,
	schedules *services.ScheduleService,
) {
	taskController := controllers.NewTaskController(tasks)
	chatController := controllers.NewChatController(agents, chat)
	notificationController := controllers.NewNotificationController(notifications, agents)
	scheduleController := controllers.NewScheduleController(schedules)
	sampleController := controllers.NewSampleDataController(tasks, notifications, chat)

	api := r.Group("/api/v1")
	{
		// 任务看板
		api.POST("/tasks", taskController.CreateTask)
		api.GET("/tasks", taskController.GetBoard)
		api.POST("/tasks/:id/complete", taskController.CompleteTask)
		api.DELETE("/tasks/:id", taskController.DeleteTask)
		api.POST("/tasks/:id/subtasks/:subtaskId/toggle", taskController.ToggleSubtask)
		api.GET("/insights", taskController.GetInsights)

		// 对话与智能体
		api.POST("/chat", chatController.SendMessage)
		api.POST("/analyze", chatController.Analyze)
		api.GET("/chat/messages", chatController.GetMessages)
		api.GET("/agent/status", chatController.AgentStatus)

		// 通知
		api.GET("/notifications", notificationController.List)
		api.POST("/notifications/:id/read", notificationController.MarkRead)
		api.POST("/notifications/read-all", notificationController.MarkAllRead)
		api.POST("/reminders/check", notificationController.CheckReminders)

		// 定时任务同步
		api.GET("/schedule", scheduleController.GetView)
		api.POST("/schedule/refresh", scheduleController.Refresh)
		api.POST("/schedule/:id/toggle", scheduleController.Toggle)
		api.POST("/schedule/:id/trigger", scheduleController.TriggerNow)

		// 示例数据开关
		api.POST("/sample-data", sampleController.Toggle)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
