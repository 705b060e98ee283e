// Package gesture implements the draggable tab bar's animation core.
//
// A long-press on the bar promotes the pointer into a drag. While dragging,
// pointer deltas are damped and written to a Session. On release the session
// settles to one of two resting positions: Docked (flush with the bottom
// edge, full width) or Floating (a narrower pill lifted by the clamp
// distance). Every visual property of the bar is derived from the session's
// vertical offset by Present.
//
// Three execution contexts touch a session:
//
//   - the pointer context (the Bubble Tea update loop) writes it while
//     dragging
//   - the settle driver (an Animator goroutine) writes it after release
//   - the render context reads it through Snapshot
//
// Each write carries a generation number so that a new long-press can take a
// session away from an in-flight settle without the two writers racing.
package gesture
