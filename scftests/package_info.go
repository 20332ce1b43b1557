// Package scftests defines the end-to-end workflow for the supply chain finance API: actor
// registration and login, creation and confirmation of a receivable, and a financing
// application against it.
//
// The workflow is a fixed, ordered list of framework.Step values. Steps pass tokens and record
// identifiers to one another only through the framework.Store, and each step declares the keys
// it needs, so the Runner can skip anything whose inputs were never produced.
package scftests
