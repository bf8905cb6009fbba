// Package seedrand provides the deterministic pseudo-random source consumed
// by every generation stage that makes a non-forced choice (split direction,
// ratio jitter).
//
// A Source wraps math/rand with an explicit seed and a Reset method. The
// engine guarantees reproducibility by consuming one Source in a fixed call
// order per run; two runs with equal seeds therefore produce byte-identical
// plans. Sources are not safe for concurrent use, matching the engine's
// strictly sequential pipeline.
package seedrand
