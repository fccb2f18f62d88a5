package simpleexcel

import (
	"fmt"
	"reflect"
	"strings"
)

// FlattenRecords turns a struct, or a slice of structs, into string-keyed rows
// that ColumnConfig.FieldName can address. Keys follow the json tag when one
// is present. Map fields are expanded into one key per entry, named
// "<field>.<map key>", so a Salaries map yields "salaries.2024-12".
func FlattenRecords(data interface{}) ([]map[string]interface{}, error) {
	val := reflect.ValueOf(data)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		row, err := flattenStruct(val)
		if err != nil {
			return nil, err
		}
		return []map[string]interface{}{row}, nil
	case reflect.Slice:
		return flattenSlice(val)
	default:
		return nil, fmt.Errorf("expected struct or slice, got %v", val.Kind())
	}
}

func flattenStruct(val reflect.Value) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if fieldType.PkgPath != "" {
			continue
		}
		name := fieldKey(fieldType)
		if name == "" {
			continue
		}

		if field.Kind() == reflect.Map {
			if field.IsNil() {
				continue
			}
			for _, key := range field.MapKeys() {
				result[fmt.Sprintf("%s.%v", name, key.Interface())] = field.MapIndex(key).Interface()
			}
			continue
		}
		result[name] = field.Interface()
	}

	return result, nil
}

func flattenSlice(val reflect.Value) ([]map[string]interface{}, error) {
	length := val.Len()
	result := make([]map[string]interface{}, length)

	for i := 0; i < length; i++ {
		elem := val.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}

		if elem.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected slice of structs, got slice of %v", elem.Kind())
		}

		flattened, err := flattenStruct(elem)
		if err != nil {
			return nil, err
		}
		result[i] = flattened
	}

	return result, nil
}

// fieldKey returns the json name of a field, its Go name when untagged, or ""
// when the field is excluded with `json:"-"`.
func fieldKey(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name := strings.Split(tag, ",")[0]; name != "" {
		return name
	}
	return f.Name
}
