// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

// Number is the set of scalar kinds a Vec2 or Rect can be built from.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Vec2 is an ordered (x, y) pair. Vec2 is a pure value type: arithmetic
// methods return a new Vec2 rather than mutating the receiver.
type Vec2[T Number] struct {
	X, Y T
}

// V2 is a short constructor for Vec2.
func V2[T Number](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// Add returns v+a.
func (v Vec2[T]) Add(a Vec2[T]) Vec2[T] { return Vec2[T]{v.X + a.X, v.Y + a.Y} }

// Sub returns v-a.
func (v Vec2[T]) Sub(a Vec2[T]) Vec2[T] { return Vec2[T]{v.X - a.X, v.Y - a.Y} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Scale returns v scaled by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Eq (==) returns true if v and a have identical components.
func (v Vec2[T]) Eq(a Vec2[T]) bool { return v.X == a.X && v.Y == a.Y }

// Min returns the component-wise minimum of v and a.
func (v Vec2[T]) Min(a Vec2[T]) Vec2[T] {
	m := v
	if a.X < m.X {
		m.X = a.X
	}
	if a.Y < m.Y {
		m.Y = a.Y
	}
	return m
}

// Max returns the component-wise maximum of v and a.
func (v Vec2[T]) Max(a Vec2[T]) Vec2[T] {
	m := v
	if a.X > m.X {
		m.X = a.X
	}
	if a.Y > m.Y {
		m.Y = a.Y
	}
	return m
}

// MinMax returns min(x,y) and max(x,y) as two values, matching the shelf
// packer's use of std::minmax on a rect's two side lengths.
func (v Vec2[T]) MinMax() (min, max T) {
	if v.X <= v.Y {
		return v.X, v.Y
	}
	return v.Y, v.X
}

// Swap returns v with its components exchanged.
func (v Vec2[T]) Swap() Vec2[T] { return Vec2[T]{v.Y, v.X} }
