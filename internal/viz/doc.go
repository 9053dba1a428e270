// Package viz holds the rendering pieces shared by the plot backends:
//
//   - [Viewport]: 1:1 mapping from plot data coordinates to a screen rectangle
//   - [Canvas]: Braille-based pixel canvas for terminal rendering, with a
//     plot surface ([Canvas.Surface])
//   - [Styles]: lipgloss styles derived from the dark or light palette
package viz
