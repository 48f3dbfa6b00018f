package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityFont             = 10 // Resolve font bindings, derive pixels per tile
	PriorityTransform        = 20 // After font, tile scaling may have changed
	PriorityMesh             = 30 // After transform
	PriorityPreview          = 35 // Terminal preview draws the settled buffers
	PriorityClearAfterRender = 40 // After everything that reads buffer content
)
