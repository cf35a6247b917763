// Package collide provides 2D shapes and the collision routines between them,
// as needed by games and other real-time simulations: containment,
// intersection, closest points, penetration vectors and swept motion.
//
// # Shapes
//
// This package includes the following shapes:
//   - [Line], a line segment
//   - [Circle]
//   - [Rect], an axis-aligned rectangle
//   - [Polygon], an outline with cached edge normals
//   - [Hexagon], a regular hexagon
//
// Shapes are plain values, with the exception of [Polygon], which owns caches
// and is used through a pointer. There is no common shape interface. Instead,
// each pair of shapes that can collide has a method on one or both of them,
// such as [Circle.IntersectsRect] and [Rect.IntersectsCircle].
//
// # Coordinate system
//
// All shapes assume a y-down coordinate system, as is common for games: the
// top of a [Rect] is its smallest y coordinate, and positive angles rotate
// clockwise. Angles are expressed in radians.
//
// # Boundaries
//
// The routines differ in how they treat points exactly on a boundary, and
// callers may depend on the exact choice. Notably, [Rect.Contains] is
// half-open, [Circle.Contains] includes the edge, and [Circle.IntersectsCircle]
// and [Rect.Intersects] do not consider touching shapes to intersect. Each
// method documents its behavior.
//
// # Degenerate shapes
//
// Zero-length lines, zero-radius circles and zero-area rectangles are valid
// inputs. Routines that would otherwise divide by a length use
// [Vec2.SafeNormalize], which maps the zero vector to itself.
//
// # Penetration and sweeping
//
// [Circle.ShortestOverlap], [Rect.ShortestOverlap] and [Hexagon.Overlap]
// compute the vector that separates two overlapping shapes along the axis of
// least penetration. The circle and hexagon variants assume that the shapes
// intersect and return unspecified results otherwise.
//
// [Circle.SweepMove], [Rect.SweepMoveLine] and [Rect.SweepMoveRect] move a
// shape towards a target position and stop it at the first contact, which
// prevents fast shapes from tunneling through thin obstacles. They report the
// outcome as a [Sweep].
//
// # Tolerances
//
// Where a routine compares floating point values approximately, it uses
// [Epsilon]. Helpers such as [ApproxEqual] take the tolerance as an argument.
//
// # Randomness
//
// Functions that produce random values take a [Rand], such as the one returned
// by [math/rand/v2.New], instead of using a global source.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package collide
