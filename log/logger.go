package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Verbosity levels accepted by SetLevel.
type Level uint8

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// The format applied to all log records.
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The shared leveled backend all named loggers emit to.
var leveledBackend logging.LeveledBackend

// Logger is the leveled logging interface handed out to the rest of the
// packages in this repo.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Redirect log output to sink. Mainly used by tests to silence or capture
// log output.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	leveledBackend.SetLevel(levelMap[Notice], "")
	logging.SetBackend(leveledBackend)
}

// Set logger verbosity for all named loggers.
func SetLevel(level Level) {
	leveledBackend.SetLevel(levelMap[level], "")
}

func init() {
	SetSink(os.Stdout)
}
