// Package validation contiene predicados puros usados por la capa de
// servicios antes de cualquier escritura. Sin efectos secundarios.
package validation

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IsEmptyObject informa si v representa "el repositorio no encontró nada":
// nil, un puntero/mapa nil, un mapa sin claves o un struct con todos sus
// campos en cero.
func IsEmptyObject(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.IsZero()
	default:
		return false
	}
}

// IsValidObject informa si todos los campos de v están poblados. Un campo
// pasa si su nombre está en nullableFields, si es numérico (el cero es un
// valor legítimo) o si no es el valor "vacío" de su tipo (string vacío,
// puntero nil, time cero). v puede ser struct, puntero a struct o mapa;
// los nombres de campo se comparan contra el tag json.
func IsValidObject(v any, nullableFields ...string) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			name, _ := key.Interface().(string)
			if contains(nullableFields, name) {
				continue
			}
			if !isPopulated(rv.MapIndex(key)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			if contains(nullableFields, fieldName(field)) {
				continue
			}
			if !isPopulated(rv.Field(i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsValidString informa si todos los argumentos son strings no vacíos.
func IsValidString(values ...string) bool {
	for _, s := range values {
		if s == "" {
			return false
		}
	}
	return true
}

// IsValidNumber informa si v es de tipo numérico. Un string con forma de
// número no cuenta (ver AsNumber para la coerción explícita).
func IsValidNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, decimal.Decimal:
		return true
	default:
		return false
	}
}

// AsNumber coerciona v a número al estilo de un cuerpo JSON laxo: acepta
// tipos numéricos, json.Number y strings parseables. El segundo retorno
// indica si la coerción fue posible.
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case decimal.Decimal:
		return n.InexactFloat64(), true
	default:
		return 0, false
	}
}

// isPopulated aplica la regla de validez por valor: los números siempre
// valen (el cero incluido), el resto no puede ser el vacío de su tipo.
func isPopulated(rv reflect.Value) bool {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok {
			return !t.IsZero()
		}
		// decimal.Decimal y otros structs de valor cuentan como poblados
		return true
	default:
		return true
	}
}

// fieldName devuelve el nombre con el que se compara un campo: el tag json
// si existe, el nombre del campo Go si no.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
