// Package roster owns the canonical student identities that attendance
// records reference.
//
// A Roster is an explicitly constructed value loaded from CSV files and
// handed to whoever needs lookups; nothing in this repository keeps a
// process-wide cached roster. The Resolver maps raw export display names to
// roster entries by normalized-exact comparison only. Fuzzy matching is an
// external concern: a stricter or smarter resolver can replace this one
// behind the same interface.
package roster
