package engine

import (
	"sort"
	"time"
)

// Entity is a unique identifier for a terminal or camera, 0 is never issued
type Entity uint64

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// AddSystem adds a system to the world and keeps systems ordered by priority
// Systems with equal priority run in registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs all systems once, the host calls it once per frame
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}
}

// SystemCount returns the number of registered systems
func (w *World) SystemCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.systems)
}
