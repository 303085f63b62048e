// Package stores provides the persistence layer for planguard. It
// includes SQLite-based storage with WAL mode and CRUD operations for
// check runs and their recorded violations, so teams can keep an audit
// trail of what each plan was flagged for.
package stores
