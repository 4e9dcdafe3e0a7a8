// Package pipeline wires the loaders, scanner, annotator, and emitter into
// the full regeneration run.
//
// Run takes an explicit Config so tests can point it at temporary paths;
// all failures come back as errors, never process exits. Given unchanged
// inputs, Run is idempotent: the output is byte-identical across runs.
package pipeline
