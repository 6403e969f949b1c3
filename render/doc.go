// Package render draws a world.Graph as an ASCII map with numbered
// gutters, suitable for a terminal.
//
// Each cell shows, in increasing override order: its terrain symbol,
// '$' for an uncollected reward ('*' once collected), '.' for a path
// cell (rewards keep their symbol), 'S'/'G' for the path endpoints,
// 'A' for the agent's position and '+' for explicitly highlighted
// nodes. Walls (coordinates with no node) render as '#'.
package render
