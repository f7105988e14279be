package logging

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEntryMarshalShape(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	entry := Entry{
		Timestamp: ts,
		Level:     LevelWarn,
		Message:   "token refresh slow",
		Context:   "auth",
		Data:      map[string]any{"elapsed_ms": 412},
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	got := string(raw)

	if !strings.Contains(got, `"timestamp":"2026-03-14T09:26:53.589Z"`) {
		t.Errorf("expected millisecond UTC timestamp, got %s", got)
	}
	if !strings.Contains(got, `"level":"warn"`) {
		t.Errorf("expected lowercase level name, got %s", got)
	}
	if !strings.Contains(got, `"elapsed_ms":412`) {
		t.Errorf("expected data payload, got %s", got)
	}
	if strings.Contains(got, "deviceInfo") {
		t.Errorf("expected deviceInfo to be omitted, got %s", got)
	}
}

func TestEntryMarshalOmitsAbsentData(t *testing.T) {
	entry := Entry{
		Timestamp: time.Now(),
		Level:     LevelInfo,
		Message:   "started",
		Context:   "app",
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Fatalf("expected no data field, got %s", raw)
	}
}

func TestEntryUnmarshalRestoresFields(t *testing.T) {
	in := `{"timestamp":"2026-03-14T09:26:53.589Z","level":"error","message":"boom","context":"orders","data":{"order_id":7},"deviceInfo":{"platform":"linux","version":"6.18.0"}}`
	var entry Entry
	if err := json.Unmarshal([]byte(in), &entry); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if entry.Level != LevelError || entry.Message != "boom" || entry.Context != "orders" {
		t.Fatalf("unexpected fields: %+v", entry)
	}
	if entry.DeviceInfo == nil || entry.DeviceInfo.Platform != "linux" {
		t.Fatalf("expected device info, got %+v", entry.DeviceInfo)
	}
	data, ok := entry.Data.(map[string]any)
	if !ok || data["order_id"] != float64(7) {
		t.Fatalf("expected data payload, got %#v", entry.Data)
	}
	if entry.Timestamp.UTC().Format(timestampLayout) != "2026-03-14T09:26:53.589Z" {
		t.Fatalf("unexpected timestamp: %v", entry.Timestamp)
	}
}

func TestFormatterAttachesDataOnlyWhenSupplied(t *testing.T) {
	f := newFormatter()
	f.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 678_901_234, time.UTC) }

	cfg := testConfig()
	with := f.format(cfg, LevelInfo, "m", "ctx", nil, true)
	without := f.format(cfg, LevelInfo, "m", "ctx", nil, false)

	if with.Timestamp.Nanosecond()%int(time.Millisecond) != 0 {
		t.Fatalf("expected millisecond precision, got %v", with.Timestamp)
	}
	if without.Data != nil {
		t.Fatalf("expected no data, got %#v", without.Data)
	}
}
