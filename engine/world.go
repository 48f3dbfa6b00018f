package engine

import (
	"sync"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/transform"
)

// World owns the terminals, cameras and fonts of one host
type World struct {
	mu           sync.RWMutex
	nextEntityID Entity

	Terminals *Store[*Terminal]
	Cameras   *Store[*transform.Camera]
	Fonts     *atlas.Registry

	defaultCamera Entity

	systems []System
}

// NewWorld creates a world resolving fonts through the given registry
func NewWorld(fonts *atlas.Registry) *World {
	if fonts == nil {
		fonts = atlas.NewRegistry()
	}
	return &World{
		nextEntityID: 1,
		Terminals:    NewStore[*Terminal](),
		Cameras:      NewStore[*transform.Camera](),
		Fonts:        fonts,
		systems:      make([]System, 0),
	}
}

// NewDefaultWorld registers the core systems in priority order
func NewDefaultWorld(fonts *atlas.Registry) *World {
	w := NewWorld(fonts)
	w.AddSystem(NewFontSystem())
	w.AddSystem(NewTransformSystem())
	w.AddSystem(NewMeshSystem())
	w.AddSystem(NewClearAfterRenderSystem())
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes the entity from every store
// Terminals bound to a destroyed camera fall back to the default camera
func (w *World) DestroyEntity(e Entity) {
	w.Terminals.Remove(e)
	w.Cameras.Remove(e)

	w.mu.Lock()
	if w.defaultCamera == e {
		w.defaultCamera = 0
	}
	w.mu.Unlock()
}

// AddCamera registers a camera and returns its entity
func (w *World) AddCamera(cam *transform.Camera) Entity {
	e := w.CreateEntity()
	w.Cameras.Set(e, cam)
	return e
}

// SetDefaultCamera designates the camera used by terminals without an explicit binding
// Passing 0 clears the designation
func (w *World) SetDefaultCamera(e Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.defaultCamera = e
}

// DefaultCamera returns the designated default camera
func (w *World) DefaultCamera() (Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.defaultCamera, w.defaultCamera != 0
}

// CameraFor resolves the camera of a terminal: its explicit binding, else the default camera
// There is no fallback to an arbitrary camera, nil means unresolved
func (w *World) CameraFor(t *Terminal) *transform.Camera {
	e := t.Camera
	if e == 0 {
		var ok bool
		if e, ok = w.DefaultCamera(); !ok {
			return nil
		}
	}
	cam, _ := w.Cameras.Get(e)
	return cam
}

// Terminal returns the terminal component of e
func (w *World) Terminal(e Entity) (*Terminal, bool) {
	return w.Terminals.Get(e)
}
