// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Rect is an axis-aligned rectangle covering
// [Position.X, Position.X+Size.X) x [Position.Y, Position.Y+Size.Y).
// Rect is a pure value type.
type Rect[T Number] struct {
	Position Vec2[T]
	Size     Vec2[T]
}

// R is a short constructor for Rect.
func R[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{Position: Vec2[T]{x, y}, Size: Vec2[T]{w, h}}
}

// Min returns the rectangle's top-left corner.
func (r Rect[T]) Min() Vec2[T] { return r.Position }

// Max returns the rectangle's bottom-right corner (exclusive).
func (r Rect[T]) Max() Vec2[T] { return r.Position.Add(r.Size) }

// Contains returns true if o lies entirely within r.
func (r Rect[T]) Contains(o Rect[T]) bool {
	rMax, oMax := r.Max(), o.Max()
	return o.Position.X >= r.Position.X && o.Position.Y >= r.Position.Y &&
		oMax.X <= rMax.X && oMax.Y <= rMax.Y
}

// Overlaps returns true if r and o share any interior area.
func (r Rect[T]) Overlaps(o Rect[T]) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Position.X < oMax.X && rMax.X > o.Position.X &&
		r.Position.Y < oMax.Y && rMax.Y > o.Position.Y
}

// CanContain reports whether a rectangle of size other.Size fits inside a
// rectangle of size r.Size. Used by the MaxRects Best-Short-Side-Fit test.
func (r Rect[T]) CanContain(other Rect[T]) bool {
	return r.Size.X >= other.Size.X && r.Size.Y >= other.Size.Y
}

// Eq (==) returns true if r and o have identical position and size.
func (r Rect[T]) Eq(o Rect[T]) bool { return r.Position.Eq(o.Position) && r.Size.Eq(o.Size) }
