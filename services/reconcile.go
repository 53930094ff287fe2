package services

import (
	"strings"

	"SmartTaskGo/config"
	"SmartTaskGo/models"
	"SmartTaskGo/store"
)

// Reconciler 将智能体的任务建议合并进既有任务，不创建新任务
type Reconciler struct {
	tasks *store.TaskStore
}

func NewReconciler(tasks *store.TaskStore) *Reconciler {
	return &Reconciler{tasks: tasks}
}

// Apply 逐条建议做模糊匹配并合并，返回合并成功的条数
// 没有匹配到任务的建议只会出现在对话记录里，不会创建任务
func (r *Reconciler) Apply(suggestions []models.TaskSuggestion) int {
	applied := 0
	for _, sug := range suggestions {
		id, ok := matchTask(r.tasks.Tasks(), sug.TaskName)
		if !ok {
			continue
		}
		if r.tasks.MergeSuggestion(id, sug) {
			applied++
			config.Logger.Debugw("合并智能体建议",
				"taskID", id,
				"suggestion", sug.TaskName,
			)
		}
	}
	return applied
}

// matchTask 在任务快照中寻找名称匹配的任务
// 规则：建议名与任务标题做不区分大小写的双向子串包含，按存储顺序取第一个命中
func matchTask(tasks []models.Task, name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, t := range tasks {
		title := strings.ToLower(t.Title)
		if strings.Contains(title, needle) || strings.Contains(needle, title) {
			return t.ID, true
		}
	}
	return "", false
}
