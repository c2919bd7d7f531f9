// Package catalog persists known media records in SQLite.
//
// The Store manages the database connection, schema initialization, and a
// sidecar file lock so only one process mutates the catalog at a time. Records
// map an identifier to a locator and display title; the "catalog" source
// backend serves Open calls from this store.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package catalog
