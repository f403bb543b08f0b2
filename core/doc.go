// Package core provides the foundational domain types, interfaces and
// contracts used by simweave. It defines the core abstractions for:
//
//   - Idents (namespaced identities: concrete kind + raw id)
//   - Registrables (entities with unique identity, activity and reporting)
//   - Agents (units of autonomous decision making with a fixed four-phase cycle)
//   - Perceptions (extract-then-distort views of the environment)
//   - Choice sets (evaluable option menus, parametric over their role types)
//   - Snapshots (per-step report records with a report-then-extend contract)
//
// The package intentionally keeps implementation concerns (registry storage,
// environment orchestration, report persistence) out of scope, exposing small
// interfaces so sibling packages can supply them without import cycles.
package core
