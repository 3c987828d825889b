// Package units implements a dimensional-analysis engine: numeric values
// carry a physical unit through arithmetic, operations that require
// dimensional homogeneity reject mismatched operands, and conversion between
// compatible units is exact whenever the inputs allow it.
//
// Units, Dimensions, and Quantity values are immutable and compared
// structurally. Every operator returns a fresh value, so all functions in
// this package are safe for concurrent use without synchronization.
//
// Primitive units and dimensions are supplied by a registration layer (see
// package catalog); this package only composes and converts well-formed
// descriptors.
package units
