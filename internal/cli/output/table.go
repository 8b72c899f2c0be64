package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// TableFormatter prints a struct or map as FIELD/VALUE rows and a *Table
// as is. Other values fall back to JSON.
type TableFormatter struct {
	NoHeaders bool

	now func() time.Time
}

func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch t := data.(type) {
	case nil:
		return nil
	case *Table:
		return t.write(w, !f.NoHeaders)
	case Table:
		return t.write(w, !f.NoHeaders)
	}

	rows, ok := f.rows(reflect.ValueOf(data))
	if !ok {
		return writeJSON(w, data)
	}
	t := Table{Headers: []string{"FIELD", "VALUE"}, Rows: rows}
	return t.write(w, !f.NoHeaders)
}

// rows flattens one level of a struct or map. Map rows are sorted by key.
func (f *TableFormatter) rows(v reflect.Value) ([][]string, bool) {
	v, ok := deref(v)
	if !ok {
		return nil, true
	}

	var out [][]string
	switch v.Kind() {
	case reflect.Struct:
		for _, sf := range reflect.VisibleFields(v.Type()) {
			if sf.Anonymous || !sf.IsExported() || sf.Tag.Get("table") == "-" {
				continue
			}
			out = append(out, []string{columnName(sf), f.cell(v.FieldByIndex(sf.Index))})
		}
	case reflect.Map:
		for it := v.MapRange(); it.Next(); {
			out = append(out, []string{f.cell(it.Key()), f.cell(it.Value())})
		}
		slices.SortFunc(out, func(a, b []string) int { return strings.Compare(a[0], b[0]) })
	default:
		return nil, false
	}
	return out, true
}

// columnName prefers the json tag so table and JSON output agree.
func columnName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}

// deref follows pointers and interfaces; ok is false on nil.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// cell renders one value. Empty strings, slices and zero times become "-";
// numbers get thousands separators.
func (f *TableFormatter) cell(v reflect.Value) string {
	v, ok := deref(v)
	if !ok {
		return ""
	}

	if t, isTime := v.Interface().(time.Time); isTime {
		if t.IsZero() {
			return "-"
		}
		rel := humanize.RelTime(t, f.clock(), "ago", "from now")
		return fmt.Sprintf("%s (%s)", t.Local().Format(time.DateTime), rel)
	}

	switch {
	case v.Kind() == reflect.String && v.Len() == 0:
		return "-"
	case v.CanInt():
		return humanize.Comma(v.Int())
	case v.CanUint():
		return humanize.Comma(int64(v.Uint()))
	case v.CanFloat():
		return humanize.Commaf(v.Float())
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		items := make([]string, 0, v.Len())
		for i := range v.Len() {
			items = append(items, f.cell(v.Index(i)))
		}
		return strings.Join(items, ", ")
	case reflect.Map, reflect.Struct:
		if raw, err := json.Marshal(v.Interface()); err == nil {
			return string(raw)
		}
	}
	return fmt.Sprint(v.Interface())
}

func (f *TableFormatter) clock() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

// Table is preformatted tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// SetHeaders replaces the header row.
func (t *Table) SetHeaders(h ...string) { t.Headers = h }

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) { t.Rows = append(t.Rows, cells) }

// Render writes the table with its headers.
func (t *Table) Render(w io.Writer) error { return t.write(w, true) }

func (t *Table) write(w io.Writer, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, r := range t.Rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}
