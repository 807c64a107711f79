// Package layout measures single lines of text for hit testing.
//
// Build splits a line into grapheme clusters (github.com/rivo/uniseg),
// gives each one a width in terminal cells (github.com/mattn/go-runewidth,
// with tabs expanded to the next tab stop) and converts cells to x
// coordinates with the configured cell width. The resulting TextLayout maps
// both ways between x coordinates and byte indexes within the line, which
// is what vertical cursor motion needs to keep a stable visual column.
//
// Each cluster also carries its resolved tcell.Style, so a terminal front
// end can draw a layout directly.
package layout
