// Package history persists merge runs in SQLite so past results can be
// reviewed from the CLI.
//
// The Store owns the database connection and a companion file lock that
// serializes concurrent scoremerge invocations against the same database.
// One row is recorded per run with the workbook path, output path, per-tier
// match counters, and a needs_review flag. The database is a journal, not an
// archive; schema changes add a migration under migrations/.
package history
