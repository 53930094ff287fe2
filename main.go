package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SmartTaskGo/config"
	"SmartTaskGo/middleware"
	"SmartTaskGo/routes"
	"SmartTaskGo/services"
	"SmartTaskGo/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化各内存存储，状态只在进程生命周期内存在
	taskStore := store.NewTaskStore()
	notificationStore := store.NewNotificationStore()
	chatLog := store.NewChatLog()

	// 初始化智能体客户端
	agentClient, err := services.NewAgentClient(
		conf.AgentAPIKey,
		conf.AgentAPIEndpoint,
		conf.TaskAgentID,
		conf.ReminderAgentID,
	)
	if err != nil {
		log.Fatalf("无法初始化智能体客户端: %v", err)
	}

	// 创建智能体会话服务
	agentService := services.NewAgentService(
		agentClient,
		taskStore,
		notificationStore,
		chatLog,
		conf.TaskAgentID,
		conf.ReminderAgentID,
	)

	// 创建提醒调度执行器，定时触发提醒检查
	scheduler, err := services.NewCronScheduler(
		conf.ScheduleID,
		conf.ReminderCron,
		conf.ScheduleTimezone,
		func(ctx context.Context) error {
			status := agentService.CheckReminders(ctx)
			if status.Type == "error" {
				return fmt.Errorf("%s", status.Text)
			}
			return nil
		},
	)
	if err != nil {
		log.Fatalf("无法初始化提醒调度器: %v", err)
	}
	scheduler.Start()

	// 创建定时任务同步服务并执行首次装载
	scheduleService := services.NewScheduleService(scheduler, conf.ScheduleID)
	scheduleService.Start(context.Background())

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.Default()

	// 设置中间件
	middleware.SetupMiddleware(r)
	r.Use(middleware.RequestLogger())

	// 注册路由
	routes.RegisterRoutes(r, taskStore, notificationStore, chatLog, agentService, scheduleService)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	// 等待运行中的定时提醒执行完
	log.Println("正在等待后台调度任务完成...")
	<-scheduler.Stop().Done()

	log.Println("服务器已关闭")
}
