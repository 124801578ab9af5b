package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Logger writes JSON log lines to a per-run file under the log directory,
// optionally mirroring each line to stderr.
type Logger struct {
	file  *os.File
	echo  io.Writer
	runID string
	path  string
}

// New creates the log directory if needed and opens one timestamped log file
// for this run. When another run already claimed the current second, the file
// name gets the run id appended so concurrent runs never share a file. With
// echo set, every record is also written to stderr.
func New(dir string, echo bool) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}
	runID := uuid.NewString()
	stamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(dir, fmt.Sprintf("resume_parser_%s.log", stamp))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		path = filepath.Join(dir, fmt.Sprintf("resume_parser_%s_%s.log", stamp, runID[:8]))
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	}
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	l := &Logger{file: f, runID: runID, path: path}
	if echo {
		l.echo = os.Stderr
	}
	return l, nil
}

// Path returns the log file path for this run.
func (l *Logger) Path() string {
	return l.path
}

// RunID returns the unique id attached to every record of this run.
func (l *Logger) RunID() string {
	return l.runID
}

// Close flushes and closes the run's log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Debug writes a debug-level log line with the given fields.
func (l *Logger) Debug(msg string, fields map[string]any) {
	l.write("debug", msg, fields)
}

// Info writes an info-level log line with the given fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.write("info", msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.write("warn", msg, fields)
}

// Error writes an error-level log line with the given fields.
func (l *Logger) Error(msg string, fields map[string]any) {
	l.write("error", msg, fields)
}

func (l *Logger) write(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(fields)+4)
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["msg"] = msg
	entry["run_id"] = l.runID
	for k, v := range fields {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.file, `{"ts":"%s","level":"error","msg":"logger marshal failed","err":%q}`+"\n", time.Now().UTC().Format(time.RFC3339), err.Error())
		return
	}
	fmt.Fprintln(l.file, string(data))
	if l.echo != nil {
		fmt.Fprintln(l.echo, string(data))
	}
}
