package schema

import _ "embed"

// DDL creates every table used by the SQLite store. Statements are idempotent.
//
//go:embed schema.sql
var DDL string
