package game

import "time"

// DefaultFPS is the redraw cadence hosts use unless configured otherwise.
const DefaultFPS = 60

// EffectiveFPS returns fps, or DefaultFPS when fps is below 1.
func EffectiveFPS(fps int) int {
	if fps < 1 {
		return DefaultFPS
	}
	return fps
}

// FrameInterval converts a frame rate to the time between frames.
func FrameInterval(fps int) time.Duration {
	return time.Second / time.Duration(EffectiveFPS(fps))
}
