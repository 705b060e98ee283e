// Package ui provides the user interface components for the pillbar TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Screen (focused tab, scrollable viewport)         │
//	│                                                     │
//	│           ╭───────────────────────────╮             │
//	│           │  ⌂     ★     ⌕     ☺      │  floating   │
//	│           │ Home  Fav  Search Profile │             │
//	│           ╰───────────────────────────╯             │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The tab bar is composited over the screen with OverlayAt. PlaceBar turns
// the gesture core's presentation, which is in points, into cells using the
// ViewContext's scale; RenderBar draws the chrome: a hairline top border
// while docked, rounded borders once the corner radius grows, and a shadow
// while the bar is lifted.
//
// # Themes
//
// Two themes mirror the navigation library's defaults: dark and light.
// SetTheme regenerates every style variable in styles.go.
package ui
