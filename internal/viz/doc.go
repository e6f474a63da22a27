// Package viz is the terminal frame driver and renderer.
//
// The package implements the interactive view with the Bubble Tea
// framework:
//
//   - [Model]: the per-tick loop (read pointer, step the rig, sample
//     the curve, draw)
//   - [Canvas]: Braille pixel canvas with a world-coordinate viewport
//   - [Autopilot]: spring-eased attract-mode pointer for idle sessions
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Mouse - Steer the curve
//	A     - Toggle attract mode
//	Space - Pause/Resume
//	R     - Reset curve
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	S     - Save SVG snapshot
//	?     - Show help overlay
//
// The clock is the Bubble Tea tick; each frame's wall-clock delta is
// normalized against the nominal 60 Hz interval and clamped before it
// reaches the integrator, so backgrounded terminals cannot destabilize
// the spring.
package viz
