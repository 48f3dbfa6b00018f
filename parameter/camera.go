package parameter

// Camera defaults for hosts without their own projection
const (
	// CameraPixelsPerUnit maps screen pixels to one world unit
	CameraPixelsPerUnit = 8

	// CameraNear and CameraFar bound the orthographic depth range
	CameraNear = -1000
	CameraFar  = 1000
)
