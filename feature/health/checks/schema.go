package checks

import (
	"fmt"
	"reflect"
	"strings"

	"drone-config/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors,omitempty"`
}

// CheckSchema verifies that the table behind model carries every column the
// model maps. The model must implement TableName.
func CheckSchema(db *gorm.DB, model any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	typ := reflect.TypeOf(model)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model %s is not a struct", typ)
	}
	tabler, ok := reflect.New(typ).Interface().(interface{ TableName() string })
	if !ok {
		return nil, fmt.Errorf("model %s does not implement TableName", typ)
	}

	report := &SchemaReport{
		Table:          tabler.TableName(),
		Matched:        true,
		MissingColumns: []string{},
	}

	actual, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Matched = false
		report.Errors = append(report.Errors, fmt.Sprintf("failed to inspect table %s: %v", report.Table, err))
		return report, nil
	}

	present := make(map[string]bool, len(actual))
	for _, col := range actual {
		present[col.Field] = true
	}

	for i := 0; i < typ.NumField(); i++ {
		col := parseGormColumn(typ.Field(i).Tag.Get("gorm"))
		if col == "" {
			continue
		}
		if !present[col] {
			report.MissingColumns = append(report.MissingColumns, col)
			report.Matched = false
		}
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.ToLower(strings.TrimPrefix(p, "column:"))
		}
	}
	return ""
}
