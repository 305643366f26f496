// Package geom provides the small value types shared by the packer, the
// glyph atlas and the batcher.
//
// All types are plain values: they are copied on assignment, carry no
// pointers and are safe to share between goroutines.
//
//   - [Point2] is a float32 2D point or vector.
//   - [Rectangle] is an integer rectangle (pixels, atlas slots).
//   - [RectangleF] is a float32 rectangle (screen space, UV space).
//
// Rectangles use the computer graphics convention: the origin is the
// top-left corner, X grows to the right and Y grows downwards. A rectangle
// with zero width or height is empty.
package geom
