package ecs

import "sort"

// Phase orders systems within one pipeline run. Lower phases run first.
type Phase int

const (
	PhaseVisibility Phase = iota
	PhaseAI
	PhaseIndex
	PhaseMelee
	PhaseCleanup
)

// System processes entities once per pipeline run.
type System interface {
	Phase() Phase
	Update(world *World)
}

// Runner executes registered systems in phase order. Systems sharing a phase
// keep their registration order.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{systems: make([]System, 0, 8)}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Run executes every system once, strictly one after another.
func (r *Runner) Run(w *World) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(w)
	}
}

// Systems returns the systems in execution order.
func (r *Runner) Systems() []System {
	r.ensureSorted()
	return r.systems
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
