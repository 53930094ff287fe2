package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// CronToHuman 将常见的五段 cron 表达式转换为可读描述
// 纯格式化函数，不认识的表达式原样返回
func CronToHuman(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	if dom != "*" || month != "*" || dow != "*" {
		return expr
	}

	// 每 N 分钟
	if hour == "*" {
		if minute == "*" {
			return "Every minute"
		}
		if n, ok := parseStep(minute); ok {
			if n == 1 {
				return "Every minute"
			}
			return fmt.Sprintf("Every %d minutes", n)
		}
		return expr
	}

	// 每 N 小时
	if n, ok := parseStep(hour); ok && minute == "0" {
		if n == 1 {
			return "Every hour"
		}
		return fmt.Sprintf("Every %d hours", n)
	}

	// 每天固定时刻
	h, errH := strconv.Atoi(hour)
	m, errM := strconv.Atoi(minute)
	if errH == nil && errM == nil {
		return fmt.Sprintf("Daily at %02d:%02d", h, m)
	}

	return expr
}

// parseStep 解析 */N 形式的字段
func parseStep(field string) (int, bool) {
	if !strings.HasPrefix(field, "*/") {
		return 0, false
	}
	n, err := strconv.Atoi(field[2:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
