// Package source is the deterministic value generator behind every fixture.
//
// A Source owns a grow-only cache of shuffled integers and a parallel cache
// of unique four-character labels. From that cache it derives, per dtype, an
// unbounded sequence of synthetic values:
//
//	int       cached integers, negated when divisible by 3, cast to width
//	uint      cached integers rotated by 100, cast to width
//	float     NaN, then ±0.02 × integer rounded to 12 decimal digits
//	complex   float (shift 0) + float (shift 100)·i
//	bool      integer parity
//	str/bytes the label cache
//	dt/td     the integer as a count of the unit
//	object    nil, true, false, then bursts of int/float/str values
//
// Sequences can be rotated ("shifted") to decorrelate parallel columns, and
// are packed into immutable arrays by Materialize and MaterializeSpec.
//
// Determinism: the cache is shuffled with a local MT19937 generator seeded
// with 22 that draws bounded integers by masked rejection, so values are
// stable across runs and processes. Growth appends a freshly shuffled range
// and never changes existing entries.
//
// Concurrency: a Source is safe for concurrent use. Growth is serialized by
// a mutex and readers work on append-only snapshots. The MaterializeSpec
// memo de-duplicates concurrent identical requests.
package source
