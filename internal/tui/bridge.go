package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/algebra/internal/orchestration"
)

// programRef lets goroutines outside the bubbletea loop send messages.
// The model is copied on every Update, so it holds this pointer.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send delivers msg to the program; it is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// progressReporter forwards orchestration progress as rowDoneMsg values.
type progressReporter struct {
	ref *programRef
	gen uint64
}

var _ orchestration.ProgressReporter = (*progressReporter)(nil)

// DisplayProgress implements orchestration.ProgressReporter.
func (p *progressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for u := range progressChan {
		p.ref.Send(rowDoneMsg{update: u, gen: p.gen})
	}
}
