// Package testutil provides stub entities and agents shared by tests across
// packages: a passive asset with a numeric value, a function-driven agent for
// scripting individual cycle phases, and a wealth-transferring agent used by
// conservation and determinism tests.
package testutil
