// Package memory provides in-memory storage for access tokens.
//
// Records live in a sharded concurrent map keyed by token hash and are
// lost when the process exits. There is no persistence layer.
//
// Thread Safety:
//
// Inserts are put-if-absent, so concurrent inserts never overwrite each
// other. Each record's call counter is an atomic integer, so concurrent
// increments never lose updates and readers never see a torn value.
package memory
