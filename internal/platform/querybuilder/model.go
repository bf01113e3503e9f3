package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Row is an ordered column list with one value per column.
type Row struct {
	Columns []string
	Values  []any
}

type columnField struct {
	index  int
	column string
}

// layouts caches the db-tagged fields of each struct type.
var layouts sync.Map

// RowOf reads the db-tagged exported fields of model in declaration order.
// Untagged fields and fields tagged "-" are skipped.
func RowOf(model any) (Row, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return Row{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return Row{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	fields := layoutOf(value.Type())
	if len(fields) == 0 {
		return Row{}, fmt.Errorf("model %s has no db columns", value.Type())
	}

	row := Row{
		Columns: make([]string, len(fields)),
		Values:  make([]any, len(fields)),
	}
	for i, f := range fields {
		row.Columns[i] = f.column
		row.Values[i] = value.Field(f.index).Interface()
	}
	return row, nil
}

// InsertModel renders a one-row INSERT for model into table.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	row, err := RowOf(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(row.Columns...).
		Values(row.Values...).
		Suffix(suffix).
		ToSQL()
}

func layoutOf(typ reflect.Type) []columnField {
	if cached, ok := layouts.Load(typ); ok {
		return cached.([]columnField)
	}

	fields := make([]columnField, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, columnField{index: i, column: name})
	}

	actual, _ := layouts.LoadOrStore(typ, fields)
	return actual.([]columnField)
}
