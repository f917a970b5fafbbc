package reflectable

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

type cacheKey struct {
	typ   reflect.Type
	field string
}

var cache sync.Map // cacheKey -> []string

// Path returns the readable path of field inside M. The field is a Go field
// name; nested fields are separated by dots. A nil path means the field does
// not exist.
func Path[M any](field string) ([]string, error) {
	return PathOf(reflect.TypeFor[M](), field)
}

// PathOf is Path for a reflect.Type known at runtime.
func PathOf(t reflect.Type, field string) ([]string, error) {
	if field == "" {
		return nil, ErrEmptyField
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, ErrDoesNotConform
	}

	key := cacheKey{typ: t, field: field}
	if cached, ok := cache.Load(key); ok {
		return slices.Clone(cached.([]string)), nil
	}

	path := resolve(t, strings.Split(field, "."))
	cache.Store(key, path)
	return slices.Clone(path), nil
}

func resolve(t reflect.Type, names []string) []string {
	path := make([]string, 0, len(names))
	for i, name := range names {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil
		}
		sf, ok := t.FieldByName(name)
		if !ok || !sf.IsExported() {
			return nil
		}
		path = append(path, segment(sf))
		if i < len(names)-1 {
			t = sf.Type
		}
	}
	return path
}

func segment(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
