package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/glyphterm/parameter"
)

// ===== FONT =====

// FontSystem resolves each terminal's font id through the registry
// A new registry version rebinds the font and updates the layout's pixels per tile
type FontSystem struct{}

// NewFontSystem creates the font system
func NewFontSystem() *FontSystem { return &FontSystem{} }

// Priority implements System
func (s *FontSystem) Priority() int { return parameter.PriorityFont }

// Update implements System
func (s *FontSystem) Update(w *World, _ time.Duration) {
	for _, e := range w.Terminals.Entities() {
		t, ok := w.Terminals.Get(e)
		if !ok {
			continue
		}
		f, version, ok := w.Fonts.Get(t.FontID)
		if !ok {
			if !t.fontMissing {
				log.Printf("Font: terminal %d bound to unregistered font %q", e, t.FontID)
			}
			t.fontMissing = true
			t.font, t.fontVersion = nil, 0
			continue
		}
		t.fontMissing = false
		if version == t.fontVersion {
			continue
		}
		t.font, t.fontVersion = f, version
		t.Layout.PixelsPerTile = f.PixelsPerTile()
	}
}

// ===== TRANSFORM =====

// TransformSystem refreshes every terminal's ToWorld from its buffer and camera
type TransformSystem struct{}

// NewTransformSystem creates the transform system
func NewTransformSystem() *TransformSystem { return &TransformSystem{} }

// Priority implements System
func (s *TransformSystem) Priority() int { return parameter.PriorityTransform }

// Update implements System
func (s *TransformSystem) Update(w *World, _ time.Duration) {
	for _, e := range w.Terminals.Entities() {
		t, ok := w.Terminals.Get(e)
		if !ok {
			continue
		}
		t.ToWorld.UpdateFromTerminal(t.Buffer.Size(), t.Position, t.Layout)
		t.ToWorld.UpdateFromCamera(w.CameraFor(t))
	}
}

// ===== MESH =====

// MeshSystem rebuilds vertex data of terminals whose buffer, font or layout changed
type MeshSystem struct{}

// NewMeshSystem creates the mesh system
func NewMeshSystem() *MeshSystem { return &MeshSystem{} }

// Priority implements System
func (s *MeshSystem) Priority() int { return parameter.PriorityMesh }

// Update implements System
func (s *MeshSystem) Update(w *World, _ time.Duration) {
	for _, e := range w.Terminals.Entities() {
		t, ok := w.Terminals.Get(e)
		if !ok {
			continue
		}
		if t.font == nil {
			continue
		}
		_, err := t.Mesh.Build(t.MeshInput())
		if err != nil {
			// Log once per distinct failure, the builder retries every frame
			if t.meshErr == nil || t.meshErr.Error() != err.Error() {
				log.Printf("Mesh: terminal %d rebuild skipped: %v", e, err)
			}
			t.meshErr = err
			continue
		}
		t.meshErr = nil
	}
}

// ===== CLEAR AFTER RENDER =====

// ClearAfterRenderSystem clears flagged terminals once everything has read them
type ClearAfterRenderSystem struct{}

// NewClearAfterRenderSystem creates the clear system
func NewClearAfterRenderSystem() *ClearAfterRenderSystem { return &ClearAfterRenderSystem{} }

// Priority implements System
func (s *ClearAfterRenderSystem) Priority() int { return parameter.PriorityClearAfterRender }

// Update implements System
func (s *ClearAfterRenderSystem) Update(w *World, _ time.Duration) {
	for _, e := range w.Terminals.Entities() {
		t, ok := w.Terminals.Get(e)
		if !ok {
			continue
		}
		if t.ClearAfterRender {
			t.Buffer.Clear()
		}
	}
}
