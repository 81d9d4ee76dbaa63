package httputil

import (
	"net/url"
	"reflect"
	"strings"
)

type field struct {
	name  string // Name of the struct field
	param string // Name of the parameter in the request
}

// tagged returns the fields of the struct type t that carry the tag.
func tagged(t reflect.Type, tag string) []field {
	var fields []field

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		// Fields of embedded structs are fields of the resource
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			fields = append(fields, tagged(f.Type, tag)...)
			continue
		}

		param, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if param == "" || param == "-" {
			continue
		}

		fields = append(fields, field{name: f.Name, param: param})
	}

	return fields
}

func jsonFields(resource any) []field {
	return tagged(reflect.Indirect(reflect.ValueOf(resource)).Type(), "json")
}

// GetURLFields checks which query parameters are set and which query
// parameters are set and can be used directly in a gorm query
//
// queryFields contains all field names that can be used directly
// in a gorm Where statement as argument to specify the fields filtered on.
// As gorm uses interface{} as type for the Where statement, we cannot use
// a []string type here.
//
// setFields returns a []string with all field names set in the query parameters.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		f := val.Type().Field(i)
		param := f.Tag.Get("form")

		// filterField is a struct tag that allows to specify if the field
		// is used to filter resources directly or if it is a meta field
		// that is processed by explicit logic outside of GetURLFields
		filterField := f.Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, f.Name)

			if filterField != "false" {
				queryFields = append(queryFields, f.Name)
			}
		}
	}

	return queryFields, setFields
}
