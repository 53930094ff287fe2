package models

import "strings"

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"` // 格式 2006-01-02，可为空
	Priority    string `json:"priority"`
	Tags        string `json:"tags"` // 逗号分隔
}

// SplitTags 将逗号分隔的标签字符串拆分为去空白后的标签列表
func (r *CreateTaskRequest) SplitTags() []string {
	if r.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(r.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ChatRequest 对话请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// SampleDataRequest 示例数据开关请求结构体
type SampleDataRequest struct {
	Enabled bool `json:"enabled"`
}
