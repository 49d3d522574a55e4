package testutil

import (
	"fmt"
	"sync"
)

// Logger собирает сообщения в память, удобен для проверок в тестах
type Logger struct {
	mu       sync.Mutex
	Messages []string
}

func (l *Logger) record(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, level+" "+fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) { l.record("DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.record("INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.record("WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.record("ERROR", format, v...) }

// Count количество сообщений уровня level
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, m := range l.Messages {
		if len(m) > len(level) && m[:len(level)+1] == level+" " {
			n++
		}
	}
	return n
}
