// Package regions decomposes a binary lesion indicator into connected
// components and answers the geometric queries the measurement and
// annotation passes need.
//
// # Connectivity
//
// Components are maximal sets of foreground pixels under 8-connectivity:
// two pixels are connected if they touch horizontally, vertically or
// diagonally. Component ids start at 1 and are assigned in row-major
// scan order, so the labeling is deterministic for a fixed indicator;
// 0 denotes background. Components are computed within a single lesion
// type's indicator only and never merge across label codes.
//
// # Coordinate System
//
// All coordinates are 0-based with origin at the top-left corner,
// X increasing rightward and Y increasing downward.
package regions
