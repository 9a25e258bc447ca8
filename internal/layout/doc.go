// Package layout holds the unit model used by the style resolver.
//
// A [Value] is what a style author writes for a geometry field: an absolute
// number of cells, a percentage, a plain numeric string, or nothing at all
// (auto). Values are resolved against a reference origin and size with
// [Value.ResolvePosition] and [Value.ResolveSize], and bounded with [Clamp].
// Types are re-exported through the root gridtui package for public consumption.
package layout
