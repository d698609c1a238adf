package logger

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	log *zap.Logger

	// logBuf is nil unless the logger captures its output
	mu     *sync.Mutex
	logBuf *bytes.Buffer
}

// New returns a logger that captures everything at level and above into memory.
// The captured output is read back with Logs.
func New(level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}
	mu := &sync.Mutex{}

	core := zapcore.NewCore(newEncoder(true), zapcore.AddSync(&lockedWriter{mu: mu, w: logBuf}), level)

	return &ZapLogger{
		log:    zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)),
		mu:     mu,
		logBuf: logBuf,
	}
}

// NewConsole writes plain console lines to w. Colors are only used for terminals
// the caller knows about.
func NewConsole(w io.Writer, level zapcore.Level, color bool) *ZapLogger {
	core := zapcore.NewCore(newEncoder(color), zapcore.Lock(zapcore.AddSync(w)), level)

	return &ZapLogger{
		log: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)),
	}
}

func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

// ParseLevel accepts the usual zap level names (debug, info, warn, error, fatal).
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, errors.Wrapf(err, "unknown log level %q", s)
	}
	return level, nil
}

func newEncoder(color bool) zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if color {
		config.EncodeLevel = colorLevelEncoder
	}

	return zapcore.NewConsoleEncoder(config)
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiRe.FindAllStringIndex(input, -1) {
		start := match[0]
		end := match[1]

		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		colorCode := input[start+2 : end-1]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// Logs renders the captured output as HTML. It is empty for non-capturing loggers.
func (z *ZapLogger) Logs() string {
	if z.logBuf == nil {
		return ""
	}
	z.mu.Lock()
	raw := z.logBuf.String()
	z.mu.Unlock()
	return ansiToHTML(raw)
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf == nil {
		return
	}
	z.mu.Lock()
	z.logBuf.Reset()
	z.mu.Unlock()
}

// Named returns a child logger sharing the same output.
func (z *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{
		log:    z.log.Named(name),
		mu:     z.mu,
		logBuf: z.logBuf,
	}
}

// Enabled reports whether entries at level are written. Hot loops check it before
// building fields.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(level)
}

// StdLog adapts the logger for libraries that want a *log.Logger. Lines are
// written at error level.
func (z *ZapLogger) StdLog() *log.Logger {
	std, err := zap.NewStdLogAt(z.log, zapcore.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(z.log)
	}
	return std
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
