// Package terminal provides the glyph grid: a dense row-major tile buffer with formatted,
// pivot aligned text placement.
//
// Coordinates:
//   - Local (grid) space has its origin at the bottom-left tile, x right, y up
//   - A Point can carry a Pivot, it is then measured inward from that pivot of the buffer
//   - The optional Border sits outside the addressable area at x=-1, x=w, y=-1, y=h
//
// Writes:
//   - PutChar and PutString change the glyph and only the colors explicitly set on the
//     formatted value, unset channels keep the existing tile color
//   - Single-tile access out of bounds panics, callers check InBounds first
//   - Bulk operations (PutString, ClearBox, ClearString) clip to the buffer
//
// Every mutation increments Version, consumers rebuild derived data only when it moved.
package terminal
