// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register(); the package
// is blank-imported by cmd/freshbasket so everything registers at startup.
package migrations
