// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus shared database error mapping and embedded schema
// migrations.
package postgres
