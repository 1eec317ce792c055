package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Model generation and column report for the SQL-backed store.

  GENERATE_MODELS=true         migrate kv_entries and write typed query helpers to ./generated
  GENERATE_COLUMN_REPORT=true  list kv_entries columns that KVEntry does not declare

Example report output:

	table=kv_entries mismatched=1 columns=[created_at]
*/

// Migrate creates or updates every table the store needs.
func Migrate(db *gorm.DB) error {
	return db.Session(&gorm.Session{SkipDefaultTransaction: true}).AutoMigrate(&KVEntry{})
}

func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	db = db.Session(&gorm.Session{
		Logger:                 db.Logger.LogMode(logger.Info),
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(KVEntry{})

	log.Info().Msg("migrating models")
	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	if _, err := GenerateColumnMismatchReport(db); err != nil {
		return err
	}

	g.Execute()
	log.Info().Msg("model generation complete")
	return nil
}

// GenerateColumnMismatchReport logs, per table, the database columns the Go model does not declare
// and returns the total count.
func GenerateColumnMismatchReport(db *gorm.DB) (int, error) {
	modelMappings := map[string]interface{}{
		KVEntry{}.TableName(): KVEntry{},
	}

	total := 0
	for tableName, modelStruct := range modelMappings {
		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			return total, err
		}

		mismatches := findColumnMismatches(dbColumns, getModelFields(modelStruct))
		total += len(mismatches)
		log.Info().
			Str("table", tableName).
			Int("mismatched", len(mismatches)).
			Strs("columns", mismatches).
			Msg("column report")
	}
	return total, nil
}

func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}
	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// getModelFields extracts column names from the gorm tags of a model struct
func getModelFields(model interface{}) []string {
	var fields []string
	t := reflect.TypeOf(model)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if columnName := extractColumnNameFromGormTag(field.Tag.Get("gorm")); columnName != "" {
			fields = append(fields, columnName)
		}
	}
	return fields
}

func extractColumnNameFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	mismatches := []string{}
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
