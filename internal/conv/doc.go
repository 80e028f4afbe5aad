// Package conv provides saturating integer type conversion utilities.
//
// Decimal exponents and rounding places are int32 in shopspring/decimal,
// while precision arithmetic is done in Go's platform-dependent int.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
