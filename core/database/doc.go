// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to open the drone config table either in a local
// sqlite file (the default) or in a MySQL server, based on the application's configuration.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings suited to
// the driver and verifies the connection with a bounded ping. sqlite connections are
// limited to a single open connection so that ":memory:" databases stay shared.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns (PRAGMA table_info on sqlite, SHOW COLUMNS
// on MySQL). The health feature uses it to verify the drone_configs table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "drone_configs")
package database
