// Package store 持有仪表盘的全部内存状态
// 状态是临时的，只在进程生命周期内存在，不做任何持久化
package store

import (
	"strings"
	"sync"
	"time"

	"SmartTaskGo/models"
	"SmartTaskGo/utils"
)

// TaskStore 任务集合，map 提供 O(1) 查找，order 保留插入顺序
// gin 的处理器并发执行，所有读写都在互斥锁内完成
type TaskStore struct {
	mu    sync.Mutex
	tasks map[string]*models.Task
	order []string
}

// NewTaskStore 创建空的任务存储
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[string]*models.Task),
	}
}

// Add 创建任务，标题去空白后为空则静默拒绝（不改变任何状态）
// 状态由截止日期推导：无截止日期或截止日期不晚于今天 => today，否则 upcoming
func (s *TaskStore) Add(req models.CreateTaskRequest) (*models.Task, bool) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, false
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	status := models.StatusToday
	if req.Deadline != "" && req.Deadline > today {
		status = models.StatusUpcoming
	}

	priority := models.PriorityMedium
	if models.IsValidPriority(strings.ToLower(req.Priority)) {
		priority = models.TaskPriority(strings.ToLower(req.Priority))
	}

	task := &models.Task{
		ID:          utils.GenerateID(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Deadline:    req.Deadline,
		Priority:    priority,
		Status:      status,
		Subtasks:    []models.SubTask{},
		Tags:        req.SplitTags(),
		CreatedAt:   now,
		CompletedAt: nil,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	cp := copyTask(task)
	return &cp, true
}

// Complete 将任务置为完成态，completed 是终态，重复调用是无副作用的
func (s *TaskStore) Complete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || t.Status == models.StatusCompleted {
		return false
	}
	now := time.Now()
	t.Status = models.StatusCompleted
	t.CompletedAt = &now
	return true
}

// Delete 删除任务及其全部子任务，不存在则不做任何事
func (s *TaskStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// ToggleSubtask 翻转子任务的完成状态，不影响父任务状态
// 任一 id 不存在则不做任何事
func (s *TaskStore) ToggleSubtask(taskID, subtaskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return false
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return true
		}
	}
	return false
}

// Board 按状态分区并应用单值优先级过滤（all 或四个等级之一）
// 分区内保持插入顺序，计数恒等于过滤后分区长度
func (s *TaskStore) Board(priorityFilter string) models.TaskBoardResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := models.TaskBoardResponse{
		Today:     []models.Task{},
		Upcoming:  []models.Task{},
		Completed: []models.Task{},
	}
	for _, id := range s.order {
		t := s.tasks[id]
		if priorityFilter != "" && priorityFilter != "all" && string(t.Priority) != priorityFilter {
			continue
		}
		cp := copyTask(t)
		switch t.Status {
		case models.StatusToday:
			board.Today = append(board.Today, cp)
		case models.StatusUpcoming:
			board.Upcoming = append(board.Upcoming, cp)
		case models.StatusCompleted:
			board.Completed = append(board.Completed, cp)
		}
	}
	board.TodayCount = len(board.Today)
	board.UpcomingCount = len(board.Upcoming)
	board.CompletedCount = len(board.Completed)
	return board
}

// Tasks 返回全部任务的快照，按插入顺序
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Task, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, copyTask(s.tasks[id]))
	}
	return result
}

// ActiveTasks 返回未完成任务的快照，按插入顺序
func (s *TaskStore) ActiveTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Task
	for _, id := range s.order {
		if t := s.tasks[id]; t.Status != models.StatusCompleted {
			result = append(result, copyTask(t))
		}
	}
	return result
}

// Len 返回任务总数
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// MergeSuggestion 将智能体建议非破坏性地合并进指定任务：
//   - 优先级仅在建议值为四个合法等级之一时覆盖，否则保留原值
//   - 预估时长只要建议提供了就覆盖
//   - 子任务仅在任务当前没有任何子任务时才写入，绝不覆盖已有子任务
func (s *TaskStore) MergeSuggestion(id string, sug models.TaskSuggestion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	if p := strings.ToLower(sug.Priority); models.IsValidPriority(p) {
		t.Priority = models.TaskPriority(p)
	}
	if sug.EstimatedTime != "" {
		t.EstimatedTime = sug.EstimatedTime
	}
	if len(sug.Subtasks) > 0 && len(t.Subtasks) == 0 {
		subs := make([]models.SubTask, 0, len(sug.Subtasks))
		for _, title := range sug.Subtasks {
			subs = append(subs, models.SubTask{
				ID:    utils.GenerateID(),
				Title: title,
			})
		}
		t.Subtasks = subs
	}
	return true
}

// Insights 统计活跃任务的优先级分布与完成率
func (s *TaskStore) Insights() models.InsightsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	var resp models.InsightsResponse
	resp.TotalTasks = len(s.order)
	for _, id := range s.order {
		t := s.tasks[id]
		if t.Status == models.StatusCompleted {
			resp.CompletedCount++
			continue
		}
		resp.TotalActive++
		switch t.Priority {
		case models.PriorityUrgent:
			resp.UrgentCount++
		case models.PriorityHigh:
			resp.HighCount++
		case models.PriorityMedium:
			resp.MediumCount++
		case models.PriorityLow:
			resp.LowCount++
		}
	}
	if resp.TotalTasks > 0 {
		resp.CompletionRate = int(float64(resp.CompletedCount)/float64(resp.TotalTasks)*100 + 0.5)
		resp.ProductivityScore = resp.CompletionRate + 20
		if resp.ProductivityScore > 100 {
			resp.ProductivityScore = 100
		}
	}
	return resp
}

// Reset 用给定集合整体替换当前任务（示例数据开关）
func (s *TaskStore) Reset(tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]*models.Task, len(tasks))
	s.order = s.order[:0]
	for i := range tasks {
		t := tasks[i]
		s.tasks[t.ID] = &t
		s.order = append(s.order, t.ID)
	}
}

// copyTask 深拷贝任务，调用方持有的副本与存储内部状态互不影响
func copyTask(t *models.Task) models.Task {
	cp := *t
	cp.Subtasks = append([]models.SubTask(nil), t.Subtasks...)
	cp.Tags = append([]string(nil), t.Tags...)
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		cp.CompletedAt = &at
	}
	return cp
}
