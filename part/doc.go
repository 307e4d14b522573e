// Package part defines the shared value types that flow between every
// other package of the solver: Part, Constraint, Requirement,
// GridSettings, Position, Location, Placement, and Solution.
//
// All types here are immutable inputs or outputs; none carry behavior
// beyond simple validation. The tri-state Tri type replaces the
// optional-boolean encoding the original NaviCust puzzle used for
// constraint fields, per the solver's documented preference for an
// explicit three-valued enum over *bool.
package part
