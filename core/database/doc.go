// Package database opens GORM connections and inspects live schemas.
//
// Connect supports MySQL, PostgreSQL and SQLite. SQLite is mostly used with
// ":memory:" in tests and for single-user setups; its pool is limited to one
// connection so the in-memory database is shared.
//
// GetTableColumns reads the live column list of a table (SHOW COLUMNS,
// information_schema or PRAGMA table_info depending on the dialect). The
// integrity feature compares it against the columns the feature models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	columns, err := database.GetTableColumns(db, "recipes")
package database
