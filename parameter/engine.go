package parameter

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventPollInterval bounds how long the demo waits for input between frames
	EventPollInterval = 4 * time.Millisecond
)

// Logging
const (
	// LogDir is where the demo writes its log in debug mode
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "glyphterm-debug.log"
)
