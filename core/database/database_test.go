package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "drones",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.EqualError(t, err, "unsupported database driver: oracle")
		assert.Nil(t, db)
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, File: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
	})

	t.Run("SQLite File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drones.db")
		db, err := Connect(Config{Driver: DriverSQLite, File: path})
		require.NoError(t, err)
		assert.NoError(t, db.Exec("CREATE TABLE probe (id INTEGER)").Error)
		assert.FileExists(t, path)
	})
}

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(Config{User: "root", Password: "p@ss", Host: "db", Port: 3306, Name: "drones"}, 5)
	assert.Equal(t, "root:p%40ss@tcp(db:3306)/drones?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s&readTimeout=5s&writeTimeout=5s", dsn)
}
