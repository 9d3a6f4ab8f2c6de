package utils

import (
	"reflect"
	"strings"
)

// Sanitize trims every string of the struct o points to, including those of
// embedded structs, so blank filters behave like absent ones.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}
	sanitizeStruct(v)
}

func sanitizeStruct(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}

		case reflect.Struct:
			if v.Type().Field(i).Anonymous {
				sanitizeStruct(field)
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
