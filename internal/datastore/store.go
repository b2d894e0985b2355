// Package datastore writes library exports to SQLite, locally or through a
// remote Datasette instance. The program never reads these databases back;
// they exist for external querying.
package datastore

// Store is a write-only destination for exported records.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
