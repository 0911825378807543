// Package migration provisions dev networks with balances, oracle prices and
// interest rates through an ordered, resumable list of steps.
package migration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	solocommon "github.com/solo-margin/solo-tools/pkg/common"
	"gopkg.in/yaml.v3"
)

var ErrNotDevNetwork = errors.New("step only runs on dev networks")

type Record struct {
	Step        string    `yaml:"step"`
	RunID       string    `yaml:"run_id"`
	CompletedAt time.Time `yaml:"completed_at"`
}

// State lists the steps already completed on a network
type State struct {
	Network   string   `yaml:"network"`
	Completed []Record `yaml:"completed"`
}

// StatePath returns the state file of a network under dir
func StatePath(dir, network string) string {
	return filepath.Join(dir, network+".yaml")
}

// LoadState reads a state file. A missing file is an empty state.
func LoadState(path, network string) (*State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &State{Network: network}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read migration state: %w", err)
	}
	var s State
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse migration state %s: %w", path, err)
	}
	if s.Network != "" && s.Network != network {
		return nil, fmt.Errorf("migration state %s belongs to network %q, not %q", path, s.Network, network)
	}
	s.Network = network
	return &s, nil
}

func (s *State) Done(step string) bool {
	for _, r := range s.Completed {
		if r.Step == step {
			return true
		}
	}
	return false
}

// Save writes the state as YAML, creating parent directories
func (s *State) Save(path string) error {
	if err := solocommon.WriteYAML(path, s); err != nil {
		return fmt.Errorf("failed to save migration state: %w", err)
	}
	return nil
}

type Report struct {
	RunID   string
	Ran     []string
	Skipped []string
}

type Runner struct {
	StatePath string
	// Now is overridable for tests
	Now func() time.Time
}

// Run executes steps in order, skipping the ones recorded in the state file
// and recording each step as soon as it completes.
func (r *Runner) Run(ctx context.Context, env *Env, steps []Step) (*Report, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	dev, err := solocommon.IsDevNetwork(env.Network)
	if err != nil {
		return nil, err
	}

	state, err := LoadState(r.StatePath, env.Network)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.New().String()}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if state.Done(step.Name) {
			env.Logger.Info("Skipping %s, already completed on %s", step.Name, env.Network)
			report.Skipped = append(report.Skipped, step.Name)
			continue
		}
		if step.DevOnly && !dev {
			return report, fmt.Errorf("%w: %s on %s", ErrNotDevNetwork, step.Name, env.Network)
		}

		env.Logger.Info("Running %s on %s", step.Name, env.Network)
		if err := step.Run(ctx, env); err != nil {
			return report, fmt.Errorf("migration step %q failed: %w", step.Name, err)
		}

		state.Completed = append(state.Completed, Record{
			Step:        step.Name,
			RunID:       report.RunID,
			CompletedAt: now().UTC(),
		})
		if err := state.Save(r.StatePath); err != nil {
			return report, fmt.Errorf("failed to record %s: %w", step.Name, err)
		}
		report.Ran = append(report.Ran, step.Name)
	}
	return report, nil
}

// Reset removes the state file so every step runs again
func (r *Runner) Reset() error {
	if err := os.Remove(r.StatePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to reset migration state: %w", err)
	}
	return nil
}
