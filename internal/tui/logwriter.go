package tui

import (
	"bytes"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// LogWriter turns console output into LogMsg, one per non empty line.
type LogWriter struct {
	mu   sync.Mutex
	send func(tea.Msg)
	buf  []byte
}

// NewLogWriter creates a LogWriter delivering to send, usually tea.Program.Send.
func NewLogWriter(send func(tea.Msg)) *LogWriter {
	return &LogWriter{send: send}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimRight(w.buf[:i], "\r"))
		w.buf = w.buf[i+1:]
		if line != "" {
			w.send(LogMsg{Line: line})
		}
	}
	return len(p), nil
}
