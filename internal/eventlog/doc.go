// Package eventlog persists subscribed window manager events.
//
// A recording session subscribes to a set of events and appends every
// received frame to a SQLite database, tagged with a session
// identifier so later inspection can tell recording runs apart. A file
// lock keeps concurrent recorders from interleaving writes into the
// same database.
package eventlog
