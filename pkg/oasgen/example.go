package oasgen

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// maxExampleDepth bounds the value walk so cyclic example values terminate.
const maxExampleDepth = 16

// convertExample turns an arbitrary Go value into a document-embeddable
// value. Fields that cannot be converted are skipped with a diagnostic
// while the rest of the object is still converted; ok reports whether
// any usable value was produced at all.
func convertExample(value any) (converted any, ok bool, diags []Diagnostic) {
	c := &exampleConverter{}
	converted, ok = c.convert("$", reflect.ValueOf(value), 0)
	return converted, ok, c.diags
}

type exampleConverter struct {
	diags []Diagnostic
}

func (c *exampleConverter) convert(path string, rv reflect.Value, depth int) (any, bool) {
	if depth > maxExampleDepth {
		c.report(path, "value nesting too deep, truncated")
		return nil, false
	}
	if !rv.IsValid() {
		return nil, true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, true
		}
		return c.convert(path, rv.Elem(), depth+1)
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.Format(time.RFC3339), true
		}
		return c.convertStruct(path, rv, depth), true
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, ok := c.convert(path+"["+strconv.Itoa(i)+"]", rv.Index(i), depth+1)
			if !ok {
				continue
			}
			items = append(items, item)
		}
		return items, true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			c.report(path, "map keys must be strings")
			return nil, false
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			converted, ok := c.convert(path+"."+key, iter.Value(), depth+1)
			if !ok {
				continue
			}
			out[key] = converted
		}
		return out, true
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		c.report(path, fmt.Sprintf("cannot convert %s value", rv.Kind()))
		return nil, false
	}
}

func (c *exampleConverter) convertStruct(path string, rv reflect.Value, depth int) map[string]any {
	out := make(map[string]any)
	for _, field := range reflect.VisibleFields(rv.Type()) {
		if field.Anonymous || !field.IsExported() {
			continue
		}
		name := exampleFieldName(field)
		if name == "" {
			continue
		}
		fieldPath := path + "." + name
		fieldValue, err := fieldByIndex(rv, field.Index)
		if err != nil {
			c.report(fieldPath, "field access failed: "+err.Error())
			continue
		}
		converted, ok := c.convert(fieldPath, fieldValue, depth+1)
		if !ok {
			continue
		}
		out[name] = converted
	}
	return out
}

// fieldByIndex guards against panics on fields promoted through nil
// embedded pointers.
func fieldByIndex(rv reflect.Value, index []int) (value reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return rv.FieldByIndex(index), nil
}

func (c *exampleConverter) report(path, message string) {
	c.diags = append(c.diags, Diagnostic{Subject: path, Message: message})
}

func exampleFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "":
		return field.Name
	case "-":
		return ""
	}
	return name
}
