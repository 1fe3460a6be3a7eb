// Package battle is the crab fight simulation: fighter construction, the
// held-key tracker, melee resolution, the per-frame step and the match
// state machine. It has no dependency on ebiten so it can be driven and
// tested without a window; frontends feed it key names and read the
// donburi world back for drawing.
package battle
