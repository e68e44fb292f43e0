package model

import "reflect"

// PatchMap flattens a partial-update request into column assignments. Only
// non-nil pointer fields carrying a db tag are included. Embedded structs
// are skipped: owner patches are applied to the owners table separately.
func PatchMap(req any) map[string]any {
	set := make(map[string]any)
	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return set
		}
		v = v.Elem()
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		col := field.Tag.Get("db")
		if col == "" || col == "-" {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}
		set[col] = fv.Elem().Interface()
	}
	return set
}
