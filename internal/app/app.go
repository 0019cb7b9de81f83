// Package app wires configuration, pattern seeding and the life engine into
// a single headless run.
package app

import (
	"fmt"
	"log"

	"torus-life/internal/core"
	"torus-life/internal/pattern"
	"torus-life/pkg/sims/life"
)

// Summary describes the final state of a run.
type Summary struct {
	Source      string
	Rows, Cols  int
	Generation  int
	Alive       int
	Communities int
}

// String formats the summary as a single log-friendly line.
func (s Summary) String() string {
	return fmt.Sprintf("source=%s size=%dx%d generation=%d alive=%d communities=%d",
		s.Source, s.Rows, s.Cols, s.Generation, s.Alive, s.Communities)
}

// Runner advances one simulation according to a Config.
type Runner struct {
	cfg   *Config
	log   *log.Logger
	pacer *core.Pacer
}

// New constructs a Runner. Trace lines go to logger.
func New(cfg *Config, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, log: logger, pacer: core.NewPacer(cfg.GPS)}
}

// Seed builds the initial simulation from -input or the registered pattern.
func (r *Runner) Seed() (*life.Life, string, error) {
	if r.cfg.Input != "" {
		g, err := pattern.Load(r.cfg.Input)
		if err != nil {
			return nil, "", err
		}
		return life.FromGrid(g), r.cfg.Input, nil
	}
	g, err := core.Build(r.cfg.Pattern, r.cfg.PatternConfig())
	if err != nil {
		return nil, "", err
	}
	return life.FromGrid(g), r.cfg.Pattern, nil
}

// Run seeds the simulation, advances it and reports the final state.
func (r *Runner) Run() (Summary, error) {
	if err := r.cfg.Validate(); err != nil {
		return Summary{}, err
	}
	sim, source, err := r.Seed()
	if err != nil {
		return Summary{}, err
	}

	if r.cfg.Trace {
		r.trace(sim)
		for i := 0; i < r.cfg.Generations; i++ {
			r.pacer.Wait()
			sim.Step()
			r.trace(sim)
		}
	} else if err := sim.Advance(r.cfg.Generations); err != nil {
		return Summary{}, err
	}

	size := sim.Size()
	return Summary{
		Source:      source,
		Rows:        size.Rows,
		Cols:        size.Cols,
		Generation:  sim.Generation(),
		Alive:       sim.TotalAliveCells(),
		Communities: sim.Communities(),
	}, nil
}

func (r *Runner) trace(sim *life.Life) {
	r.log.Printf("generation=%d alive=%d communities=%d", sim.Generation(), sim.TotalAliveCells(), sim.Communities())
}
