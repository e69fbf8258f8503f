// Package aggregates implements the catalog write boundaries on top of the
// table repos: every mutation runs inside one aggregate-owned transaction,
// re-validates its preconditions under row locks, and routes every failure
// through MapError so callers only ever see catalog error codes.
package aggregates
