// Package launcher executes a template's window list: it launches the
// declared applications with maximum safe parallelism and places each
// new window at its resolved rectangle.
//
// Entries whose windows the discovery diff could confuse (same type and
// discriminator) are serialized; everything else runs concurrently, one
// worker per group. Serializing within a group guarantees each launch
// snapshots existing window ids only after the previous launch's window
// was already attributed, so the "existing vs new" diff is never
// ambiguous.
package launcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/platform"
	"github.com/dmezquita/workspacectl/internal/template"
)

// Outcome is the per-entry result of a run.
type Outcome struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Label  string `yaml:"label"            json:"label"`
	Window string `yaml:"window,omitempty" json:"window,omitempty"`
	Reason string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Scheduler runs window entries against a platform provider.
type Scheduler struct {
	Provider *platform.Provider
	Registry *monitor.Registry

	// DiscoveryTimeout bounds the wait for a spawned window to appear.
	DiscoveryTimeout time.Duration
	// PollInterval is the discovery polling period.
	PollInterval time.Duration
	// SettleDelay is the pause after unmaximizing before geometry is
	// applied, giving the window manager time to act.
	SettleDelay time.Duration
}

// New returns a Scheduler with the default timing profile.
func New(p *platform.Provider, reg *monitor.Registry) *Scheduler {
	return &Scheduler{
		Provider:         p,
		Registry:         reg,
		DiscoveryTimeout: 5 * time.Second,
		PollInterval:     100 * time.Millisecond,
		SettleDelay:      100 * time.Millisecond,
	}
}

// Run executes all entries and returns one outcome per entry. Outcomes
// keep declaration order within a group; across groups the order
// depends on completion and is unspecified. Failures are per-entry and
// never abort the group or the run. An empty entry list yields an empty
// outcome list.
func (s *Scheduler) Run(windows []template.Window) []Outcome {
	groups := partition(windows)

	var (
		mu       sync.Mutex
		outcomes []Outcome
		wg       sync.WaitGroup
	)

	for _, group := range groups {
		wg.Add(1)
		go func(group []template.Window) {
			defer wg.Done()
			next := 0
			// A panic inside an entry must not stall sibling groups;
			// convert it and the group's unattempted remainder into
			// failed outcomes.
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					for ; next < len(group); next++ {
						outcomes = append(outcomes, Outcome{
							OK:     false,
							Label:  label(group[next]),
							Reason: fmt.Sprintf("internal error: %v", r),
						})
					}
					mu.Unlock()
				}
			}()
			for ; next < len(group); next++ {
				out := s.launchOne(group[next])
				mu.Lock()
				outcomes = append(outcomes, out)
				mu.Unlock()
			}
		}(group)
	}
	wg.Wait()

	if outcomes == nil {
		outcomes = []Outcome{}
	}
	return outcomes
}

// launchOne walks a single entry through its lifecycle: resolve,
// snapshot, spawn, discover, place. Every failure is reported in the
// outcome instead of propagating.
func (s *Scheduler) launchOne(w template.Window) Outcome {
	out := Outcome{Label: label(w)}

	mon := s.Registry.Lookup(w.Monitor)
	rect, err := geometry.Resolve(w.Position.Spec, mon)
	if err != nil {
		out.Reason = fmt.Sprintf("position: %v", err)
		return out
	}

	query, argv, err := s.plan(w)
	if err != nil {
		out.Reason = err.Error()
		return out
	}

	before, err := query()
	if err != nil {
		out.Reason = fmt.Sprintf("window query: %v", err)
		return out
	}

	if err := s.Provider.Spawner.Spawn(argv); err != nil {
		out.Reason = fmt.Sprintf("spawn: %v", err)
		return out
	}

	id, ok := waitForNew(query, idSet(before), s.DiscoveryTimeout, s.PollInterval)
	if !ok {
		out.Reason = fmt.Sprintf("no new window appeared within %s", s.DiscoveryTimeout)
		return out
	}
	out.Window = string(id)

	if err := s.place(id, w.Desktop, rect); err != nil {
		out.Reason = err.Error()
		return out
	}

	out.OK = true
	return out
}

// plan derives the discovery query and spawn argv for an entry.
func (s *Scheduler) plan(w template.Window) (func() ([]platform.WindowID, error), []string, error) {
	switch w.Type {
	case "kitty":
		title := w.Title
		if title == "" {
			title = DefaultKittyTitle
		}
		// Keep the shell alive after the command so the terminal window
		// stays up.
		argv := []string{"kitty", "--title", title, "-e", "bash", "-c", w.Command + "; exec bash"}
		return func() ([]platform.WindowID, error) {
			return s.Provider.Windows.FindByTitle(title)
		}, argv, nil
	case "app":
		class := effectiveClass(w)
		if class == "" {
			return nil, nil, fmt.Errorf("cannot derive window class from empty command")
		}
		argv, err := splitCommand(w.Command)
		if err != nil {
			return nil, nil, err
		}
		return func() ([]platform.WindowID, error) {
			return s.Provider.Windows.FindByClass(class)
		}, argv, nil
	default:
		return nil, nil, fmt.Errorf("unknown window type %q", w.Type)
	}
}

// place moves the window to its desktop and applies the resolved
// rectangle compensated for frame extents, so the visible content
// region matches the target rather than the decorated outer window.
// Desktop/maximize changes already applied are not rolled back when a
// later step fails.
func (s *Scheduler) place(id platform.WindowID, desktop int, rect geometry.Rect) error {
	if err := s.Provider.Placer.AssignDesktop(id, desktop); err != nil {
		return fmt.Errorf("assign desktop: %w", err)
	}
	if err := s.Provider.Placer.ClearMaximized(id); err != nil {
		return fmt.Errorf("unmaximize: %w", err)
	}
	time.Sleep(s.SettleDelay)

	ext := s.Provider.Placer.GetFrameExtents(id)
	outer := geometry.Rect{
		X: rect.X - ext.Left,
		Y: rect.Y - ext.Top,
		W: rect.W + ext.Left + ext.Right,
		H: rect.H + ext.Top + ext.Bottom,
	}
	if err := s.Provider.Placer.ApplyGeometry(id, outer); err != nil {
		return fmt.Errorf("apply geometry: %w", err)
	}
	return nil
}

// label names an entry in summaries: its title when declared, otherwise
// its discriminator.
func label(w template.Window) string {
	if w.Title != "" {
		return w.Title
	}
	return Key(w).Discriminator
}
