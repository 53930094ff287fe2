package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"SmartTaskGo/models"
)

// fakeSchedulerAPI 可编程的远端调度器替身
type fakeSchedulerAPI struct {
	mu        sync.Mutex
	schedules []models.Schedule
	logs      []models.ExecutionLog
	listErr   error
	logsErr   error
	pauseErr  error
	trigErr   error

	paused    []string
	resumed   []string
	triggered []string
	logCalls  int
}

func (f *fakeSchedulerAPI) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Schedule(nil), f.schedules...), nil
}

func (f *fakeSchedulerAPI) GetScheduleLogs(ctx context.Context, scheduleID string, limit int) ([]models.ExecutionLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logCalls++
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return append([]models.ExecutionLog(nil), f.logs...), nil
}

func (f *fakeSchedulerAPI) PauseSchedule(ctx context.Context, scheduleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = append(f.paused, scheduleID)
	if f.pauseErr != nil {
		return f.pauseErr
	}
	f.setActive(scheduleID, false)
	return nil
}

func (f *fakeSchedulerAPI) ResumeSchedule(ctx context.Context, scheduleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumed = append(f.resumed, scheduleID)
	f.setActive(scheduleID, true)
	return nil
}

func (f *fakeSchedulerAPI) TriggerScheduleNow(ctx context.Context, scheduleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggered = append(f.triggered, scheduleID)
	return f.trigErr
}

func (f *fakeSchedulerAPI) setActive(id string, active bool) {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			f.schedules[i].IsActive = active
		}
	}
}

func (f *fakeSchedulerAPI) logCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logCalls
}

func newFakeAPI() *fakeSchedulerAPI {
	return &fakeSchedulerAPI{
		schedules: []models.Schedule{{
			ID:             "sched-1",
			IsActive:       true,
			CronExpression: "0 */2 * * *",
			Timezone:       "UTC",
		}},
		logs: []models.ExecutionLog{{ID: "log-1", Success: true}},
	}
}

func TestRefreshSchedulesSuccess(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")

	svc.RefreshSchedules(context.Background())

	view := svc.View()
	if len(view.Schedules) != 1 || view.Schedules[0].ID != "sched-1" {
		t.Fatalf("schedules=%v", view.Schedules)
	}
	if view.Error != "" || view.Loading {
		t.Fatalf("view=%+v", view)
	}
	if view.CronHuman != "Every 2 hours" {
		t.Fatalf("cronHuman=%q", view.CronHuman)
	}
}

func TestRefreshSchedulesFailureKeepsPriorList(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")
	svc.RefreshSchedules(context.Background())

	api.mu.Lock()
	api.listErr = errors.New("remote down")
	api.mu.Unlock()
	svc.RefreshSchedules(context.Background())

	view := svc.View()
	if len(view.Schedules) != 1 {
		t.Fatal("失败时应保留旧列表")
	}
	if view.Error != "Failed to load schedules" {
		t.Fatalf("error=%q", view.Error)
	}

	// 随后的成功刷新清除错误
	api.mu.Lock()
	api.listErr = nil
	api.mu.Unlock()
	svc.RefreshSchedules(context.Background())
	if svc.View().Error != "" {
		t.Fatal("成功刷新应清除错误")
	}
}

func TestRefreshLogsSilentFailure(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")

	if err := svc.RefreshLogs(context.Background()); err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if len(svc.View().Logs) != 1 {
		t.Fatal("日志未装载")
	}

	api.mu.Lock()
	api.logsErr = errors.New("logs unavailable")
	api.mu.Unlock()
	if err := svc.RefreshLogs(context.Background()); err == nil {
		t.Fatal("应把错误返回给调用方")
	}
	// 旧日志保留, 视图不带错误
	view := svc.View()
	if len(view.Logs) != 1 || view.Error != "" {
		t.Fatalf("日志失败应完全静默: %+v", view)
	}
}

func TestToggleUsesServerStateAsTruth(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")
	svc.RefreshSchedules(context.Background())

	// 活跃 -> 暂停
	svc.Toggle(context.Background(), "sched-1")
	if len(api.paused) != 1 || len(api.resumed) != 0 {
		t.Fatalf("paused=%v resumed=%v", api.paused, api.resumed)
	}
	if svc.View().Schedules[0].IsActive {
		t.Fatal("重新拉取后应反映服务端的暂停状态")
	}

	// 已暂停 -> 恢复
	svc.Toggle(context.Background(), "sched-1")
	if len(api.resumed) != 1 {
		t.Fatalf("resumed=%v", api.resumed)
	}
	if !svc.View().Schedules[0].IsActive {
		t.Fatal("重新拉取后应反映服务端的活跃状态")
	}
}

func TestToggleFailurePaths(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")
	svc.RefreshSchedules(context.Background())

	svc.Toggle(context.Background(), "no-such-id")
	if svc.View().Error != "Schedule not found" {
		t.Fatalf("error=%q", svc.View().Error)
	}
	if len(api.paused)+len(api.resumed) != 0 {
		t.Fatal("未知 id 不应触达远端")
	}

	api.mu.Lock()
	api.pauseErr = errors.New("pause rejected")
	api.mu.Unlock()
	svc.Toggle(context.Background(), "sched-1")
	view := svc.View()
	if view.Error != "Failed to toggle schedule" {
		t.Fatalf("error=%q", view.Error)
	}
	// 失败后依然重新拉取, 列表仍是服务端状态
	if len(view.Schedules) != 1 {
		t.Fatal("失败后应保留拉取到的列表")
	}
}

func TestTriggerNowSchedulesDeferredLogRefresh(t *testing.T) {
	api := newFakeAPI()
	svc := NewScheduleService(api, "sched-1")
	svc.logRefreshDelay = 10 * time.Millisecond

	status := svc.TriggerNow(context.Background(), "sched-1")
	if status.Type != "success" || status.Text != "Schedule triggered manually" {
		t.Fatalf("status=%+v", status)
	}
	if len(api.triggered) != 1 {
		t.Fatal("应触达远端触发接口")
	}
	if api.logCallCount() != 0 {
		t.Fatal("日志刷新应延迟执行, 不是立刻")
	}

	deadline := time.Now().Add(2 * time.Second)
	for api.logCallCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("延迟日志刷新未发生")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := api.logCallCount(); got != 1 {
		t.Fatalf("应只刷新一次, got %d", got)
	}
}

func TestTriggerNowFailure(t *testing.T) {
	api := newFakeAPI()
	api.trigErr = errors.New("schedule sched-1 not found")
	svc := NewScheduleService(api, "sched-1")
	svc.logRefreshDelay = 10 * time.Millisecond

	status := svc.TriggerNow(context.Background(), "sched-1")
	if status.Type != "error" || status.Text != "schedule sched-1 not found" {
		t.Fatalf("status=%+v", status)
	}
	if svc.View().Error != "schedule sched-1 not found" {
		t.Fatalf("view error=%q", svc.View().Error)
	}

	// 失败时不安排延迟刷新
	time.Sleep(50 * time.Millisecond)
	if api.logCallCount() != 0 {
		t.Fatal("失败后不应刷新日志")
	}
}
