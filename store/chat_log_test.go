package store

import (
	"encoding/json"
	"testing"

	"SmartTaskGo/models"
)

func TestChatLogAppendOnly(t *testing.T) {
	l := NewChatLog()

	u := l.Append(models.RoleUser, "hello", nil)
	if u.ID == "" || u.Timestamp.IsZero() {
		t.Fatal("追加的消息应带有 id 和时间戳")
	}

	raw := json.RawMessage(`{"message":"hi"}`)
	a := l.Append(models.RoleAssistant, "hi", raw)

	msgs := l.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len=%d, want 2", len(msgs))
	}
	if msgs[0].ID != u.ID || msgs[1].ID != a.ID {
		t.Fatal("消息应按追加顺序排列")
	}
	if string(msgs[1].Data) != string(raw) {
		t.Fatal("结构化载荷应原样保存")
	}
	if l.Len() != 2 {
		t.Fatalf("Len=%d, want 2", l.Len())
	}
}

func TestChatLogReset(t *testing.T) {
	l := NewChatLog()
	l.Append(models.RoleUser, "old", nil)

	l.Reset(SampleChatMessages())
	if l.Len() != len(SampleChatMessages()) {
		t.Fatalf("Reset 后 len=%d", l.Len())
	}

	l.Reset(nil)
	if l.Len() != 0 {
		t.Fatal("Reset(nil) 应清空记录")
	}
}
