// Package framework contains the domain-independent machinery for running an ordered, stateful
// workflow of steps against an HTTP API.
//
// The general model is:
//
// 1. Each Step declares the Store keys it needs, whether it is critical, and an Action that
// talks to the API through a Client and reports an Outcome: Passed (optionally exporting values
// into the Store), Failed, or Skipped.
//
// 2. The Runner executes steps strictly in order, one at a time. It skips any step whose
// required keys are missing, stops the run when a critical step fails, and stops cleanly when
// its context is cancelled.
//
// 3. Every result is recorded in a Report, which keeps the total/passed/failed counters and
// can be rendered as a human-readable summary.
//
// The domain-specific code that knows what is being tested is responsible for defining the
// steps and interpreting the API's responses.
package framework
