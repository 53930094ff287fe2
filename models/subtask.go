package models

// SubTask 子任务模型，生命周期完全归属于父任务
type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
