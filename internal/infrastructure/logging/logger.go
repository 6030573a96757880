package logging

import (
	"encoding/json"
	"io"
	"maps"
	"os"
	"sync"
	"time"
)

// Logger records operational events that must be findable later: callbacks
// that matched nothing, notification sinks that failed, orphaned payments.
type Logger interface {
	Info(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// JSONLogger writes one JSON object per event.
type JSONLogger struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

func NewJSONLogger(out io.Writer) *JSONLogger {
	if out == nil {
		out = os.Stdout
	}
	return &JSONLogger{out: out, now: time.Now}
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	entry := map[string]any{
		"level": level,
		"msg":   msg,
		"time":  l.now().UTC().Format(time.RFC3339),
	}
	maps.Copy(entry, fields)

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"level": level, "msg": msg, "marshal_error": err.Error()})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(b, '\n'))
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	l.log("INFO", msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log("ERROR", msg, fields)
}

// Nop discards everything. Used where a caller passes no logger.
type Nop struct{}

func (Nop) Info(string, map[string]any)  {}
func (Nop) Error(string, map[string]any) {}
