package checks

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"drone-config/core/database"
	"drone-config/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type widget struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Color string `gorm:"column:color"`
	Note  string `gorm:"-"`
}

func (widget) TableName() string { return "widgets" }

type untabled struct {
	ID uint `gorm:"column:id"`
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, widget{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_NoTableName(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := CheckSchema(db, untabled{})
	assert.ErrorContains(t, err, "does not implement TableName")
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, File: ":memory:"})
	require.NoError(t, err)

	t.Run("MissingTable", func(t *testing.T) {
		report, err := CheckSchema(db, &widget{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"id", "name", "color"}, report.MissingColumns)
	})

	t.Run("Matched", func(t *testing.T) {
		require.NoError(t, db.AutoMigrate(&widget{}))
		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "widgets", report.Table)
		assert.Empty(t, report.MissingColumns)
	})
}

func TestCheckSchema_MySQL(t *testing.T) {
	t.Run("MissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("id", "int(10) unsigned", "NO", "PRI", nil, "auto_increment").
			AddRow("name", "longtext", "YES", "", nil, "")
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `widgets`")).WillReturnRows(rows)

		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Equal(t, []string{"color"}, report.MissingColumns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InspectFailure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `widgets`")).WillReturnError(errors.New("access denied"))

		report, err := CheckSchema(db, widget{})
		require.NoError(t, err)
		assert.False(t, report.Matched)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "access denied")
	})
}

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, StorageDisabled, CheckStorage(ctx, nil, "b").Status)

	t.Run("OK", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		assert.Equal(t, StorageReport{Status: StorageOK, Bucket: "b"}, CheckStorage(ctx, client, "b"))
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)
		assert.Equal(t, StorageMissing, CheckStorage(ctx, client, "b").Status)
	})

	t.Run("Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, errors.New("dial tcp: refused"))
		report := CheckStorage(ctx, client, "b")
		assert.Equal(t, StorageError, report.Status)
		assert.Equal(t, "dial tcp: refused", report.Error)
	})
}
