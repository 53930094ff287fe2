package store

import (
	"testing"
	"time"

	"SmartTaskGo/models"
)

func TestAddRejectsBlankTitle(t *testing.T) {
	s := NewTaskStore()

	for _, title := range []string{"", "   ", "\t\n"} {
		task, ok := s.Add(models.CreateTaskRequest{Title: title})
		if ok || task != nil {
			t.Fatalf("标题 %q 应被拒绝", title)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("拒绝后存储应为空, got %d", s.Len())
	}
}

func TestAddDerivesStatusFromDeadline(t *testing.T) {
	s := NewTaskStore()
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	cases := []struct {
		deadline string
		want     models.TaskStatus
	}{
		{"", models.StatusToday},
		{today, models.StatusToday},
		{yesterday, models.StatusToday},
		{tomorrow, models.StatusUpcoming},
	}
	for _, c := range cases {
		task, ok := s.Add(models.CreateTaskRequest{Title: "t", Deadline: c.deadline})
		if !ok {
			t.Fatalf("添加失败, deadline=%q", c.deadline)
		}
		if task.Status != c.want {
			t.Fatalf("deadline=%q: status=%s, want %s", c.deadline, task.Status, c.want)
		}
	}
}

func TestAddDefaultsInvalidPriority(t *testing.T) {
	s := NewTaskStore()

	task, _ := s.Add(models.CreateTaskRequest{Title: "a", Priority: "URGENT"})
	if task.Priority != models.PriorityUrgent {
		t.Fatalf("合法优先级应归一化为小写, got %s", task.Priority)
	}

	task, _ = s.Add(models.CreateTaskRequest{Title: "b", Priority: "critical"})
	if task.Priority != models.PriorityMedium {
		t.Fatalf("非法优先级应回落为 medium, got %s", task.Priority)
	}

	task, _ = s.Add(models.CreateTaskRequest{Title: "c"})
	if task.Priority != models.PriorityMedium {
		t.Fatalf("缺省优先级应为 medium, got %s", task.Priority)
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	s := NewTaskStore()
	task, _ := s.Add(models.CreateTaskRequest{Title: "done me"})

	if !s.Complete(task.ID) {
		t.Fatal("首次完成应成功")
	}
	got := s.Tasks()[0]
	if got.Status != models.StatusCompleted {
		t.Fatalf("status=%s, want completed", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatal("完成后 completedAt 不应为空")
	}
	first := *got.CompletedAt

	// 重复完成不应有任何副作用
	if s.Complete(task.ID) {
		t.Fatal("重复完成应返回 false")
	}
	if again := s.Tasks()[0]; !again.CompletedAt.Equal(first) {
		t.Fatal("重复完成不应更新 completedAt")
	}

	if s.Complete("missing") {
		t.Fatal("不存在的任务应返回 false")
	}
}

func TestDeleteRemovesFromOrder(t *testing.T) {
	s := NewTaskStore()
	a, _ := s.Add(models.CreateTaskRequest{Title: "a"})
	b, _ := s.Add(models.CreateTaskRequest{Title: "b"})
	c, _ := s.Add(models.CreateTaskRequest{Title: "c"})

	if !s.Delete(b.ID) {
		t.Fatal("删除存在的任务应成功")
	}
	if s.Delete(b.ID) {
		t.Fatal("重复删除应返回 false")
	}

	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].ID != a.ID || tasks[1].ID != c.ID {
		t.Fatalf("删除后应保持剩余插入顺序, got %v", tasks)
	}
}

func TestToggleSubtaskRoundTrips(t *testing.T) {
	s := NewTaskStore()
	task, _ := s.Add(models.CreateTaskRequest{Title: "parent"})
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Subtasks: []string{"one", "two"}})

	subID := s.Tasks()[0].Subtasks[0].ID
	if !s.ToggleSubtask(task.ID, subID) {
		t.Fatal("翻转应成功")
	}
	if !s.Tasks()[0].Subtasks[0].Completed {
		t.Fatal("第一次翻转后应为已完成")
	}
	if s.Tasks()[0].Status != models.StatusToday {
		t.Fatal("子任务翻转不应影响父任务状态")
	}

	s.ToggleSubtask(task.ID, subID)
	if s.Tasks()[0].Subtasks[0].Completed {
		t.Fatal("第二次翻转应恢复未完成")
	}

	if s.ToggleSubtask(task.ID, "missing") || s.ToggleSubtask("missing", subID) {
		t.Fatal("任一 id 不存在时应返回 false")
	}
}

func TestBoardFiltersAndCounts(t *testing.T) {
	s := NewTaskStore()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	s.Add(models.CreateTaskRequest{Title: "h1", Priority: "high"})
	s.Add(models.CreateTaskRequest{Title: "m1"})
	h2, _ := s.Add(models.CreateTaskRequest{Title: "h2", Priority: "high", Deadline: tomorrow})
	done, _ := s.Add(models.CreateTaskRequest{Title: "h3", Priority: "high"})
	s.Complete(done.ID)

	board := s.Board("high")
	if board.TodayCount != 1 || board.UpcomingCount != 1 || board.CompletedCount != 1 {
		t.Fatalf("high 过滤计数不对: today=%d upcoming=%d completed=%d",
			board.TodayCount, board.UpcomingCount, board.CompletedCount)
	}
	if len(board.Today) != 0 && board.Today[0].Title != "h1" {
		t.Fatal("today 分区内容不对")
	}
	if board.Upcoming[0].ID != h2.ID {
		t.Fatal("upcoming 分区内容不对")
	}
	// 计数必须恒等于分区长度
	if board.TodayCount != len(board.Today) || board.CompletedCount != len(board.Completed) {
		t.Fatal("计数与分区长度不一致")
	}

	all := s.Board("all")
	if all.TodayCount+all.UpcomingCount+all.CompletedCount != 4 {
		t.Fatal("all 过滤应包含全部任务")
	}
	if all.Today[0].Title != "h1" || all.Today[1].Title != "m1" {
		t.Fatal("分区内应保持插入顺序")
	}
	if all.CompletedCount != 1 || all.Completed[0].ID != done.ID {
		t.Fatal("completed 分区内容不对")
	}
}

func TestMergeSuggestionNonDestructive(t *testing.T) {
	s := NewTaskStore()
	task, _ := s.Add(models.CreateTaskRequest{Title: "merge me", Priority: "high"})

	// 非法优先级保留原值, 预估时长无条件覆盖
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Priority: "extreme", EstimatedTime: "2 hours"})
	got := s.Tasks()[0]
	if got.Priority != models.PriorityHigh {
		t.Fatalf("非法优先级不应覆盖, got %s", got.Priority)
	}
	if got.EstimatedTime != "2 hours" {
		t.Fatalf("estimatedTime=%q, want 2 hours", got.EstimatedTime)
	}

	// 合法优先级覆盖, 大小写不敏感
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Priority: "Urgent"})
	if s.Tasks()[0].Priority != models.PriorityUrgent {
		t.Fatal("合法优先级应覆盖")
	}

	// 子任务只在为空时写入
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Subtasks: []string{"a", "b"}})
	subs := s.Tasks()[0].Subtasks
	if len(subs) != 2 {
		t.Fatalf("首次写入子任务失败, got %d", len(subs))
	}
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Subtasks: []string{"x"}})
	after := s.Tasks()[0].Subtasks
	if len(after) != 2 || after[0].Title != "a" {
		t.Fatal("已有子任务绝不能被覆盖")
	}

	if s.MergeSuggestion("missing", models.TaskSuggestion{Priority: "low"}) {
		t.Fatal("不存在的任务应返回 false")
	}
}

func TestInsights(t *testing.T) {
	s := NewTaskStore()
	if got := s.Insights(); got.CompletionRate != 0 || got.ProductivityScore != 0 {
		t.Fatal("空存储的统计应全为零")
	}

	a, _ := s.Add(models.CreateTaskRequest{Title: "a", Priority: "urgent"})
	s.Add(models.CreateTaskRequest{Title: "b", Priority: "high"})
	s.Add(models.CreateTaskRequest{Title: "c", Priority: "low"})
	s.Add(models.CreateTaskRequest{Title: "d"})
	s.Complete(a.ID)

	got := s.Insights()
	if got.TotalTasks != 4 || got.CompletedCount != 1 || got.TotalActive != 3 {
		t.Fatalf("总量统计不对: %+v", got)
	}
	if got.UrgentCount != 0 || got.HighCount != 1 || got.MediumCount != 1 || got.LowCount != 1 {
		t.Fatalf("优先级分布只统计活跃任务: %+v", got)
	}
	if got.CompletionRate != 25 {
		t.Fatalf("completionRate=%d, want 25", got.CompletionRate)
	}
	if got.ProductivityScore != 45 {
		t.Fatalf("productivityScore=%d, want 45", got.ProductivityScore)
	}
}

func TestInsightsScoreCapped(t *testing.T) {
	s := NewTaskStore()
	a, _ := s.Add(models.CreateTaskRequest{Title: "a"})
	s.Complete(a.ID)

	if got := s.Insights(); got.ProductivityScore != 100 {
		t.Fatalf("productivityScore 应封顶在 100, got %d", got.ProductivityScore)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewTaskStore()
	task, _ := s.Add(models.CreateTaskRequest{Title: "iso", Tags: "a,b"})
	s.MergeSuggestion(task.ID, models.TaskSuggestion{Subtasks: []string{"s1"}})

	snap := s.Tasks()
	snap[0].Title = "mutated"
	snap[0].Subtasks[0].Completed = true
	snap[0].Tags[0] = "mutated"

	got := s.Tasks()[0]
	if got.Title != "iso" || got.Subtasks[0].Completed || got.Tags[0] != "a" {
		t.Fatal("修改快照不应影响存储内部状态")
	}
}

func TestResetReplacesAll(t *testing.T) {
	s := NewTaskStore()
	s.Add(models.CreateTaskRequest{Title: "old"})

	s.Reset(SampleTasks())
	if s.Len() != len(SampleTasks()) {
		t.Fatalf("Reset 后数量=%d", s.Len())
	}

	s.Reset(nil)
	if s.Len() != 0 {
		t.Fatal("Reset(nil) 应清空存储")
	}
}
