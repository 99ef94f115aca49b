//go:build linux

package x11

import (
	"fmt"
	"os/exec"
)

// Spawner launches commands detached from workspacectl's lifecycle.
type Spawner struct{}

func (s *Spawner) Spawn(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	// Launched applications own their output; tying them to our stdio
	// would block them when workspacectl exits.
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %q: %w", argv[0], err)
	}
	// Reap the direct child in the background so it never zombies while
	// the run is still in flight.
	go func() { _ = cmd.Wait() }()
	return nil
}
