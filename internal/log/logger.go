// Package log provides structured event logging.
// Events are appended as JSON lines to events.jsonl through a zap core.
package log

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event type constants.
const (
	EventSessionStarted     = "session_started"
	EventTransition         = "transition"
	EventModeSelected       = "mode_selected"
	EventTopicSelected      = "topic_selected"
	EventDrawComplete       = "draw_complete"
	EventReflectionComplete = "reflection_complete"
	EventSummaryRequested   = "summary_requested"
	EventSummaryComplete    = "summary_complete"
	EventSummaryFailed      = "summary_failed"
	EventAnswerCopied       = "answer_copied"
	EventIntentRejected     = "intent_rejected"
	EventSessionEnded       = "session_ended"
)

// FileName is the log file created inside the log directory.
const FileName = "events.jsonl"

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time       time.Time `json:"time"`
	Level      string    `json:"level,omitempty"`
	Event      string    `json:"event"`
	Run        string    `json:"run,omitempty"`
	From       string    `json:"from,omitempty"`
	View       string    `json:"view,omitempty"`
	Mode       string    `json:"mode,omitempty"`
	Topic      string    `json:"topic,omitempty"`
	Count      int       `json:"count,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path  string
	run   string
	file  *os.File
	z     *zap.Logger
	level zap.AtomicLevel
}

// Option configures a Logger.
type Option func(*Logger)

// WithDebug records debug-level events such as rejected intents.
func WithDebug(on bool) Option {
	return func(l *Logger) {
		if on {
			l.level.SetLevel(zapcore.DebugLevel)
		}
	}
}

// WithRun stamps every event with the given run id.
func WithRun(id string) Option {
	return func(l *Logger) { l.run = id }
}

// Path returns the log file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// NewLogger creates a Logger that appends to events.jsonl inside dir.
// Creates dir if it does not already exist. Does not truncate an existing
// log file.
func NewLogger(dir string, opts ...Option) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := Path(dir)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{path: path, file: f, level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	for _, opt := range opts {
		opt(l)
	}

	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "event",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     utcTime,
		EncodeDuration: zapcore.MillisDurationEncoder,
	})
	l.z = zap.New(zapcore.NewCore(enc, zapcore.AddSync(f), l.level))
	return l, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop(), level: zap.NewAtomicLevel()}
}

func utcTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}

// Run returns the run id stamped on events.
func (l *Logger) Run() string { return l.run }

// Append writes a single LogEvent as one JSON line. Time and Level are
// assigned by the logger; intent_rejected is recorded at debug level.
func (l *Logger) Append(event LogEvent) {
	level := zapcore.InfoLevel
	switch event.Event {
	case EventIntentRejected:
		level = zapcore.DebugLevel
	case EventSummaryFailed:
		level = zapcore.WarnLevel
	}

	ce := l.z.Check(level, event.Event)
	if ce == nil {
		return
	}
	ce.Write(fields(l.run, event)...)
}

func fields(run string, e LogEvent) []zap.Field {
	if e.Run == "" {
		e.Run = run
	}
	fs := make([]zap.Field, 0, 10)
	add := func(key, val string) {
		if val != "" {
			fs = append(fs, zap.String(key, val))
		}
	}
	add("run", e.Run)
	add("from", e.From)
	add("view", e.View)
	add("mode", e.Mode)
	add("topic", e.Topic)
	add("provider", e.Provider)
	add("reason", e.Reason)
	add("error", e.Error)
	if e.Count != 0 {
		fs = append(fs, zap.Int("count", e.Count))
	}
	if e.DurationMs != 0 {
		fs = append(fs, zap.Int64("duration_ms", e.DurationMs))
	}
	return fs
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	_ = l.z.Sync()
	err := l.file.Close()
	l.file = nil
	return err
}

// ReadAll reads and parses all events from the log file.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	if l.path == "" {
		return []LogEvent{}, nil
	}
	return ReadFile(l.path)
}

// ReadFile reads and parses all events from the JSONL file at path.
// Returns an empty slice (not an error) if the file does not exist.
func ReadFile(path string) ([]LogEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}

// Tail returns the last n events, or all of them when n <= 0.
func Tail(events []LogEvent, n int) []LogEvent {
	if n <= 0 || n >= len(events) {
		return events
	}
	return events[len(events)-n:]
}
