// Package frame contains the core components of an in-memory columnar
// data engine: typed nullable columns, type-erased heterogeneous
// storage, DataFrames with row and column mutation, non-owning slices,
// grouping with aggregation, and relational joins. This root package
// defines the types employed during regular use of the engine and is
// an overview of its key concepts; parsing lives under
// datasource/parser and statistics under stats.
package frame
