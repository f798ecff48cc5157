// Package layout assigns every reachable person a generation and a box
// position.
//
// # Overview
//
// [Build] runs a breadth-first walk starting from the root generation.
// Generation g+1 is the insertion-ordered set of known children of everyone
// in generation g: people are visited in row order and their relationships in
// input order, so the result is fully deterministic.
//
// A person reached again from a deeper generation (two ancestors at different
// depths, or pedigree collapse) moves to the deeper row and leaves no gap in
// the row it left. Only the final placement produces a [Position].
//
// # Coordinates
//
// Rows are packed left to right from the origin:
//
//	x = OriginX + i*(BoxWidth+HGap)
//	y = OriginY + g*(BoxHeight+VGap)
//
// Rows are not centred against each other.
//
// # Cycles
//
// Before the walk, the parent-child graph is checked with
// [family.CheckCycles]. Cycles come back as a structural error instead of
// looping forever. People nobody can reach from a root, such as the children
// of an unknown parent, are left out of [Layout.Positions].
//
// # Geometry
//
// All sizes come from [Config]. [DefaultConfig] reproduces the classic
// 120x60 boxes with 40px gutters and 80px between generations.
package layout
