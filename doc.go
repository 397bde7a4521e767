// Package plotgeom turns raw tabular data into renderable bar chart
// and histogram geometry.
//
// The package computes coordinates, labels, axis limits and bucket
// counts; it draws nothing itself. Reading files, splitting columns
// and painting a canvas are left to the caller.
//
// Categorical Coordinates
//
// A bar series may use names instead of numbers on its base axis.
// Such a series is resolved against a Registry which hands out stable
// integer positions in first-seen order, so repeated plot calls keep
// every bar in place while new categories extend the axis to the
// right. An all-numeric series passes through untouched.
//
// Geometry
//
// Package geom expands resolved center/height pairs into closed bar
// outlines and bins sample columns into histogram buckets. Each geom
// produces plain coordinate slices for terminal-style renderers and
// gonum/plot plotters for canvas rendering.
package plotgeom
