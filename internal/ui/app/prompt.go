package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// promptMsg carries sign-in instructions written while the UI owns the terminal.
type promptMsg struct{ text string }

// Prompt is the sign-in prompt writer for the UI: writes become messages for the running
// program instead of text on the alt-screen. Writes before Attach are held back.
type Prompt struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []byte
}

func NewPrompt() *Prompt {
	return &Prompt{}
}

// Attach delivers held-back and future writes through send, usually (*tea.Program).Send.
func (p *Prompt) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	if len(pending) > 0 {
		send(promptMsg{text: string(pending)})
	}
}

func (p *Prompt) Write(b []byte) (int, error) {
	p.mu.Lock()
	send := p.send
	if send == nil {
		p.pending = append(p.pending, b...)
		p.mu.Unlock()

		return len(b), nil
	}
	p.mu.Unlock()

	send(promptMsg{text: string(b)})

	return len(b), nil
}
