package grid

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// execMsg carries a surface mutation into the bubbletea event loop
type execMsg struct {
	fn   func()
	done chan struct{}
}

// Sender holds a function to send messages to Bubble Tea
type Sender struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewSender creates a new Sender
func NewSender() *Sender {
	return &Sender{}
}

// Set sets the send function
func (s *Sender) Set(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send = send
}

// Send sends a message if the send function is set
func (s *Sender) Send(msg tea.Msg) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.send != nil {
		s.send(msg)
	}
}

// ProgramExecutor runs surface mutations on the bubbletea event loop
type ProgramExecutor struct {
	sender  *Sender
	stopped chan struct{}
	once    sync.Once
}

// NewProgramExecutor creates an executor; Bind it to a program before use
func NewProgramExecutor() *ProgramExecutor {
	return &ProgramExecutor{
		sender:  NewSender(),
		stopped: make(chan struct{}),
	}
}

// Bind routes tasks to the program's Send
func (e *ProgramExecutor) Bind(send func(tea.Msg)) {
	e.sender.Set(send)
}

// Exec sends fn to the event loop and waits until Update has run it
func (e *ProgramExecutor) Exec(fn func()) bool {
	select {
	case <-e.stopped:
		return false
	default:
	}

	msg := execMsg{fn: fn, done: make(chan struct{})}
	e.sender.Send(msg)

	select {
	case <-msg.done:
		return true
	case <-e.stopped:
		return false
	}
}

// Stop releases waiting and future Exec calls; call once the program has exited
func (e *ProgramExecutor) Stop() {
	e.once.Do(func() { close(e.stopped) })
}
