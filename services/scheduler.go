package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/utils"

	"github.com/robfig/cron/v3"
)

// ReminderJob 调度器每次触发时执行的工作，通常是一次提醒检查
type ReminderJob func(ctx context.Context) error

const maxExecutionLogs = 50

// CronScheduler 进程内的提醒调度执行器，实现 SchedulerAPI 契约
// 暂停即移除 cron 条目，恢复即重新注册；手动触发异步执行，
// 日志要过一会儿才可见，这正是同步控制器延迟刷新的原因
type CronScheduler struct {
	mu       sync.Mutex
	runner   *cron.Cron
	job      ReminderJob
	schedule models.Schedule
	entryID  cron.EntryID
	logs     []models.ExecutionLog
}

func NewCronScheduler(scheduleID, cronExpr, timezone string, job ReminderJob) (*CronScheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	s := &CronScheduler{
		runner: cron.New(cron.WithLocation(loc)),
		job:    job,
		schedule: models.Schedule{
			ID:             scheduleID,
			IsActive:       true,
			CronExpression: cronExpr,
			Timezone:       timezone,
		},
	}

	entryID, err := s.runner.AddFunc(cronExpr, s.runScheduled)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}
	s.entryID = entryID
	return s, nil
}

// Start 启动调度循环
func (s *CronScheduler) Start() {
	s.runner.Start()
	config.Logger.Infow("提醒调度器已启动",
		"scheduleID", s.schedule.ID,
		"cron", s.schedule.CronExpression,
		"timezone", s.schedule.Timezone,
	)
}

// Stop 停止调度循环，返回的 context 在所有运行中的任务结束后完成
func (s *CronScheduler) Stop() context.Context {
	return s.runner.Stop()
}

// runScheduled cron 触发入口
func (s *CronScheduler) runScheduled() {
	s.execute(context.Background())
}

// execute 执行一次提醒任务并记录执行历史
func (s *CronScheduler) execute(ctx context.Context) {
	err := s.job(ctx)
	now := time.Now()

	entry := models.ExecutionLog{
		ID:         utils.GenerateID(),
		Success:    err == nil,
		ExecutedAt: now,
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
		config.Logger.Errorw("定时提醒执行失败", "error", err, "scheduleID", s.schedule.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append([]models.ExecutionLog{entry}, s.logs...)
	if len(s.logs) > maxExecutionLogs {
		s.logs = s.logs[:maxExecutionLogs]
	}
	success := err == nil
	s.schedule.LastRunAt = &now
	s.schedule.LastRunSuccess = &success
}

// ListSchedules 返回当前全部定时任务（本执行器只有一个）
func (s *CronScheduler) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := s.schedule
	if sc.IsActive {
		if next := s.runner.Entry(s.entryID).Next; !next.IsZero() {
			sc.NextRunTime = &next
		}
	}
	return []models.Schedule{sc}, nil
}

// GetScheduleLogs 返回最近的执行历史，最新在前
func (s *CronScheduler) GetScheduleLogs(ctx context.Context, scheduleID string, limit int) ([]models.ExecutionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scheduleID != s.schedule.ID {
		return nil, fmt.Errorf("schedule %s not found", scheduleID)
	}
	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}
	return append([]models.ExecutionLog(nil), s.logs[:limit]...), nil
}

// PauseSchedule 暂停调度，移除 cron 条目；已暂停时幂等
func (s *CronScheduler) PauseSchedule(ctx context.Context, scheduleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scheduleID != s.schedule.ID {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	if !s.schedule.IsActive {
		return nil
	}
	s.runner.Remove(s.entryID)
	s.schedule.IsActive = false
	s.schedule.NextRunTime = nil
	config.Logger.Infow("定时任务已暂停", "scheduleID", scheduleID)
	return nil
}

// ResumeSchedule 恢复调度，重新注册 cron 条目；未暂停时幂等
func (s *CronScheduler) ResumeSchedule(ctx context.Context, scheduleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scheduleID != s.schedule.ID {
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	if s.schedule.IsActive {
		return nil
	}
	entryID, err := s.runner.AddFunc(s.schedule.CronExpression, s.runScheduled)
	if err != nil {
		return err
	}
	s.entryID = entryID
	s.schedule.IsActive = true
	config.Logger.Infow("定时任务已恢复", "scheduleID", scheduleID)
	return nil
}

// TriggerScheduleNow 手动触发一次执行，异步进行，调用立即返回
func (s *CronScheduler) TriggerScheduleNow(ctx context.Context, scheduleID string) error {
	s.mu.Lock()
	if scheduleID != s.schedule.ID {
		s.mu.Unlock()
		return fmt.Errorf("schedule %s not found", scheduleID)
	}
	s.mu.Unlock()

	go s.execute(context.Background())
	return nil
}
