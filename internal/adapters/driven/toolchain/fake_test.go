package toolchain

import (
	"context"
	"sync"
)

// fakeRunner records commands and returns a scripted error.
type fakeRunner struct {
	mu       sync.Mutex
	commands []Command
	err      error
}

func (r *fakeRunner) Run(_ context.Context, cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	return r.err
}

func (r *fakeRunner) last() Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return Command{}
	}
	return r.commands[len(r.commands)-1]
}
