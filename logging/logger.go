package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Level int

const (
	FATAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

func (l Level) String() string {
	switch l {
	case FATAL:
		return "fatal"
	case ERROR:
		return "error"
	case WARNING:
		return "warn"
	case INFO:
		return "info"
	default:
		return "debug"
	}
}

// ParseLevel parses debug, info, warn, error or fatal.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	}
	return INFO, errors.Errorf("unknown log level %q", s)
}

type Record struct {
	Level     Level
	Component string
	Message   string
}

const (
	CLEARLINE = "\x1b[2K"
)

func Debugf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{DEBUG, "", fmt.Sprintf(msg, args...)}
}

func Infof(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{INFO, "", fmt.Sprintf(msg, args...)}
}

func Warnf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{WARNING, "", fmt.Sprintf(msg, args...)}
}

func Errorf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{ERROR, "", fmt.Sprintf(msg, args...)}
}

func Progress(msg string) {
	defaultLogBroker.Progress <- msg
}

// SetQuiet disables progress output.
func SetQuiet(quiet bool) {
	defaultLogBroker.mu.Lock()
	defaultLogBroker.quiet = quiet
	defaultLogBroker.mu.Unlock()
}

// SetLevel drops all records above level. Fatal records are always printed.
func SetLevel(level Level) {
	defaultLogBroker.mu.Lock()
	defaultLogBroker.level = level
	defaultLogBroker.mu.Unlock()
}

// SetOutput redirects all log output. Defaults to stdout.
func SetOutput(w io.Writer) {
	defaultLogBroker.mu.Lock()
	defaultLogBroker.out = w
	defaultLogBroker.mu.Unlock()
}

type Logger struct {
	Component string
}

func (l *Logger) Print(args ...interface{}) {
	defaultLogBroker.Records <- Record{INFO, l.Component, fmt.Sprint(args...)}
}

func (l *Logger) Printf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{INFO, l.Component, fmt.Sprintf(msg, args...)}
}

func (l *Logger) Debugf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{DEBUG, l.Component, fmt.Sprintf(msg, args...)}
}

// Fatal logs the message, flushes all pending records and exits with 1.
func (l *Logger) Fatal(args ...interface{}) {
	defaultLogBroker.Records <- Record{FATAL, l.Component, fmt.Sprint(args...)}
	Shutdown()
	os.Exit(1)
}

func (l *Logger) Fatalf(msg string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(msg, args...))
}

func (l *Logger) Errorf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{ERROR, l.Component, fmt.Sprintf(msg, args...)}
}

func (l *Logger) Warn(args ...interface{}) {
	defaultLogBroker.Records <- Record{WARNING, l.Component, fmt.Sprint(args...)}
}

func (l *Logger) Warnf(msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{WARNING, l.Component, fmt.Sprintf(msg, args...)}
}

func (l *Logger) Printfl(level Level, msg string, args ...interface{}) {
	defaultLogBroker.Records <- Record{level, l.Component, fmt.Sprintf(msg, args...)}
}

func (l *Logger) StartStep(msg string) string {
	defaultLogBroker.StepStart <- Step{l.Component, msg}
	return msg
}

func (l *Logger) StopStep(msg string) {
	defaultLogBroker.StepStop <- Step{l.Component, msg}
}

func NewLogger(component string) *Logger {
	return &Logger{component}
}

type Step struct {
	Component string
	Name      string
}

type LogBroker struct {
	Records      chan Record
	Progress     chan string
	StepStart    chan Step
	StepStop     chan Step
	quit         chan bool
	done         chan bool
	mu           sync.Mutex
	quiet        bool
	level        Level
	out          io.Writer
	newline      bool
	lastProgress string
}

func (l *LogBroker) loop() {
	steps := make(map[Step]time.Time)
For:
	for {
		select {
		case record := <-l.Records:
			l.printRecord(record)
		case progress := <-l.Progress:
			l.printProgress(progress)
		case step := <-l.StepStart:
			steps[step] = time.Now()
			l.printProgress(step.Name)
		case step := <-l.StepStop:
			startTime := steps[step]
			delete(steps, step)
			duration := time.Since(startTime)
			l.printRecord(Record{INFO, step.Component, step.Name + " took: " + duration.String()})
		case <-l.quit:
			break For
		}
	}
Flush:
	// after quit, print all records from chan
	for {
		select {
		case record := <-l.Records:
			l.printRecord(record)
		default:
			break Flush
		}
	}
	l.mu.Lock()
	if !l.newline {
		fmt.Fprintln(l.out)
		l.newline = true
	}
	l.lastProgress = ""
	l.mu.Unlock()
	l.done <- true
}

func (l *LogBroker) printPrefix() {
	fmt.Fprint(l.out, "[", time.Now().Format(time.Stamp), "] ")
}

func (l *LogBroker) printComponent(component string) {
	if component != "" {
		fmt.Fprint(l.out, "[", component, "] ")
	}
}

func (l *LogBroker) printLevel(level Level) {
	if level <= WARNING || level == DEBUG {
		fmt.Fprint(l.out, "[", level, "] ")
	}
}

func (l *LogBroker) printRecord(record Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if record.Level > l.level && record.Level != FATAL {
		return
	}
	if !l.newline {
		fmt.Fprint(l.out, CLEARLINE)
	}
	l.printPrefix()
	l.printComponent(record.Component)
	l.printLevel(record.Level)
	fmt.Fprintln(l.out, record.Message)
	l.newline = true
	if l.lastProgress != "" && !l.quiet {
		l.writeProgress(l.lastProgress)
	}
}

func (l *LogBroker) printProgress(progress string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quiet {
		return
	}
	l.writeProgress(progress)
}

func (l *LogBroker) writeProgress(progress string) {
	l.printPrefix()
	fmt.Fprint(l.out, progress)
	fmt.Fprint(l.out, "\r")
	l.lastProgress = progress
	l.newline = false
}

// Shutdown flushes all pending records. The logger is restarted afterwards
// so that records logged after Shutdown are not lost.
func Shutdown() {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	defaultLogBroker.quit <- true
	<-defaultLogBroker.done
	go defaultLogBroker.loop()
}

var shutdownMu sync.Mutex

var defaultLogBroker *LogBroker

func init() {
	defaultLogBroker = &LogBroker{
		Records:   make(chan Record, 8),
		Progress:  make(chan string),
		StepStart: make(chan Step),
		StepStop:  make(chan Step),
		quit:      make(chan bool),
		done:      make(chan bool),
		level:     INFO,
		out:       os.Stdout,
		newline:   true,
	}
	go defaultLogBroker.loop()
}
