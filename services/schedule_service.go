package services

import (
	"context"
	"sync"
	"time"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/utils"
)

// SchedulerAPI 远端调度器协作方契约
// 权威状态在远端，本服务只消费该接口，不关心其实现位置
type SchedulerAPI interface {
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	GetScheduleLogs(ctx context.Context, scheduleID string, limit int) ([]models.ExecutionLog, error)
	PauseSchedule(ctx context.Context, scheduleID string) error
	ResumeSchedule(ctx context.Context, scheduleID string) error
	TriggerScheduleNow(ctx context.Context, scheduleID string) error
}

const scheduleLogLimit = 10

// ScheduleService 定时任务同步控制器
// 持有远端调度状态的本地镜像，任何本地假设最终都被下一次成功拉取覆盖
type ScheduleService struct {
	api SchedulerAPI

	mu         sync.Mutex
	schedules  []models.Schedule
	scheduleID string
	logs       []models.ExecutionLog
	loading    bool
	lastErr    string

	// 手动触发后延迟单次刷新日志的间隔，给远端执行器留出落盘时间
	logRefreshDelay time.Duration
}

func NewScheduleService(api SchedulerAPI, defaultScheduleID string) *ScheduleService {
	return &ScheduleService{
		api:             api,
		scheduleID:      defaultScheduleID,
		logRefreshDelay: 3 * time.Second,
	}
}

// Start 首次装载：两个刷新各自独立执行，互不串联
func (s *ScheduleService) Start(ctx context.Context) {
	go s.RefreshSchedules(ctx)
	go func() { _ = s.RefreshLogs(ctx) }()
}

// RefreshSchedules 拉取全部定时任务
// 成功则整体替换本地列表并清除错误；失败保留旧列表并记录错误
// 并发调用不做合并，远端读取是幂等且无副作用的
func (s *ScheduleService) RefreshSchedules(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	list, err := s.api.ListSchedules(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		config.Logger.Errorw("拉取定时任务失败", "error", err)
		s.lastErr = "Failed to load schedules"
		return
	}
	s.schedules = list
	// 把选中 id 重新钉到服务端返回的匹配项上
	for _, sc := range list {
		if sc.ID == s.scheduleID {
			s.scheduleID = sc.ID
			break
		}
	}
}

// RefreshLogs 拉取最近的执行历史
// 失败只返回给调用方，调用方可以忽略：界面保留旧日志，不弹错误
// 这是全系统唯一完全静默的失败路径，日志属于尽力而为的遥测
func (s *ScheduleService) RefreshLogs(ctx context.Context) error {
	s.mu.Lock()
	id := s.scheduleID
	s.mu.Unlock()
	if id == "" {
		return nil
	}

	logs, err := s.api.GetScheduleLogs(ctx, id, scheduleLogLimit)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.logs = logs
	s.mu.Unlock()
	return nil
}

// Toggle 按本地缓存的 is_active 决定调用暂停还是恢复，
// 然后无条件重新拉取列表，以服务端状态为准，绝不本地臆断结果
func (s *ScheduleService) Toggle(ctx context.Context, scheduleID string) {
	s.mu.Lock()
	var current *models.Schedule
	for i := range s.schedules {
		if s.schedules[i].ID == scheduleID {
			current = &s.schedules[i]
			break
		}
	}
	if current == nil {
		s.lastErr = "Schedule not found"
		s.mu.Unlock()
		return
	}
	isActive := current.IsActive
	s.mu.Unlock()

	var err error
	if isActive {
		err = s.api.PauseSchedule(ctx, scheduleID)
	} else {
		err = s.api.ResumeSchedule(ctx, scheduleID)
	}

	s.RefreshSchedules(ctx)

	if err != nil {
		config.Logger.Errorw("切换定时任务失败", "error", err, "scheduleID", scheduleID)
		s.mu.Lock()
		s.lastErr = "Failed to toggle schedule"
		s.mu.Unlock()
	}
}

// TriggerNow 手动触发一次执行
// 成功后立即返回状态，并安排一次固定延迟的日志刷新（不是轮询重试）
func (s *ScheduleService) TriggerNow(ctx context.Context, scheduleID string) models.StatusMessage {
	err := s.api.TriggerScheduleNow(ctx, scheduleID)
	if err != nil {
		config.Logger.Errorw("手动触发定时任务失败", "error", err, "scheduleID", scheduleID)
		text := err.Error()
		if text == "" {
			text = "Failed to trigger schedule"
		}
		s.mu.Lock()
		s.lastErr = text
		s.mu.Unlock()
		return models.StatusMessage{Type: "error", Text: text}
	}

	time.AfterFunc(s.logRefreshDelay, func() {
		_ = s.RefreshLogs(context.Background())
	})

	return models.StatusMessage{Type: "success", Text: "Schedule triggered manually"}
}

// View 返回同步控制器的视图模型快照
func (s *ScheduleService) View() models.ScheduleViewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.ScheduleViewResponse{
		Schedules:  append([]models.Schedule(nil), s.schedules...),
		ScheduleID: s.scheduleID,
		Logs:       append([]models.ExecutionLog(nil), s.logs...),
		Loading:    s.loading,
		Error:      s.lastErr,
	}
	for _, sc := range s.schedules {
		if sc.ID == s.scheduleID {
			resp.CronHuman = utils.CronToHuman(sc.CronExpression)
			break
		}
	}
	return resp
}
