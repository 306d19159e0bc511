// Package provision holds the value types of a provisioning run and the pure
// functions that derive them: recursion level parsing, service identity
// generation, and the payloads for the three backend operations.
//
// Nothing in this package fails. Absent configuration is an empty string and
// an unusable level is level 0.
package provision
