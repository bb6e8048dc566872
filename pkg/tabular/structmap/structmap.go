// Package structmap builds RowMappers from struct tags. Fields tagged
// `col:"<n>"` are filled from the zero-based column n of each row, coerced
// by cellval to the field's type. Pointer fields are optional: a cell that
// yields no value leaves the pointer nil, while a plain field keeps its
// zero value. With WithValidation, mapped structs are checked by
// go-playground/validator and failing rows are skipped.
//
//	type Person struct {
//	    Name string `col:"0" validate:"required"`
//	    Age  *int   `col:"1"`
//	}
//	mapper, err := structmap.New[Person](structmap.WithValidation())
//	people, err := tabular.ReadAll("people.xlsx", mapper, tabular.DefaultOptions())
package structmap

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alentr/ler-excel/pkg/tabular/cellval"
	"github.com/alentr/ler-excel/pkg/tabular/models"
)

// Option configures a Mapper.
type Option func(*config)

type config struct {
	validate bool
}

// WithValidation enables struct validation of every mapped row. Rows whose
// mapped struct fails validation are skipped.
func WithValidation() Option {
	return func(c *config) { c.validate = true }
}

// Mapper maps rows to values of the struct type T. It implements the
// tabular RowMapper contract and is safe to reuse across reads.
type Mapper[T any] struct {
	bindings []binding
	validate *validator.Validate
}

type binding struct {
	field   int
	col     int
	extract extractor
}

// extractor pulls a typed value out of a cell; false means no value.
type extractor func(c *models.Cell) (reflect.Value, bool)

// New builds a Mapper for the struct type T from its `col` tags. It errors
// when T is not a struct, a tag is not a non-negative integer, or a tagged
// field has an unsupported type.
func New[T any](opts ...Option) (*Mapper[T], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("structmap: %s is not a struct type", t)
	}

	m := &Mapper[T]{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("col")
		if !ok {
			continue
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("structmap: field %s.%s has a col tag but is unexported", t.Name(), f.Name)
		}
		col, err := strconv.Atoi(tag)
		if err != nil || col < 0 {
			return nil, fmt.Errorf("structmap: field %s.%s: col tag %q is not a non-negative integer", t.Name(), f.Name, tag)
		}
		ex, err := extractorFor(f.Type)
		if err != nil {
			return nil, fmt.Errorf("structmap: field %s.%s: %w", t.Name(), f.Name, err)
		}
		m.bindings = append(m.bindings, binding{field: i, col: col, extract: ex})
	}
	if len(m.bindings) == 0 {
		return nil, fmt.Errorf("structmap: %s has no col-tagged fields", t)
	}

	if cfg.validate {
		m.validate = validator.New()
	}
	return m, nil
}

// MapRow maps one row into a T. It returns false only when validation is
// enabled and the mapped struct fails it.
func (m *Mapper[T]) MapRow(row models.Row) (T, bool) {
	var out T
	v := reflect.ValueOf(&out).Elem()
	for _, b := range m.bindings {
		if val, ok := b.extract(row.Cell(b.col)); ok {
			v.Field(b.field).Set(val)
		}
	}
	if m.validate != nil {
		if err := m.validate.Struct(out); err != nil {
			var zero T
			return zero, false
		}
	}
	return out, true
}

var timeType = reflect.TypeOf(time.Time{})

func extractorFor(t reflect.Type) (extractor, error) {
	if t == timeType {
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := cellval.AsTime(c)
			return reflect.ValueOf(v), ok
		}, nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		inner, err := extractorFor(t.Elem())
		if err != nil {
			return nil, err
		}
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := inner(c)
			if !ok {
				return reflect.Value{}, false
			}
			p := reflect.New(t.Elem())
			p.Elem().Set(v)
			return p, true
		}, nil
	case reflect.String:
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := cellval.AsString(c)
			return reflect.ValueOf(v).Convert(t), ok
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := cellval.AsInt(c)
			return reflect.ValueOf(v).Convert(t), ok
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := cellval.AsFloat(c)
			return reflect.ValueOf(v).Convert(t), ok
		}, nil
	case reflect.Bool:
		return func(c *models.Cell) (reflect.Value, bool) {
			v, ok := cellval.AsBool(c)
			return reflect.ValueOf(v).Convert(t), ok
		}, nil
	default:
		return nil, fmt.Errorf("unsupported field type %s", t)
	}
}
