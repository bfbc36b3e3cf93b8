package cldrgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const codesPerLine = 10

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{"quote": strconv.Quote}).Parse(`// Code generated by "regionnames generate"; DO NOT EDIT.

package cldr

func init() {
	register({{quote .ID}}, {{.Ident}}Names, {{if .HasSorted}}{{.Ident}}Sorted{{else}}nil{{end}}, {{if .Likely}}{{.Ident}}Likely{{else}}nil{{end}})
}

var {{.Ident}}Names = map[string]string{
{{range .Names}}{{if .Gap}}
{{end}}	{{quote .Code}}: {{quote .Name}},
{{end}}}
{{- if .HasSorted}}

var {{.Ident}}Sorted = []string{
{{range .SortedLines}}	{{.}}
{{end}}}
{{- end}}
{{- if .Likely}}

var {{.Ident}}Likely = []string{ {{- .Likely -}} }
{{- end}}
`))

type fileName struct {
	Code string
	Name string
	Gap  bool // blank line before, separates numeric from alpha codes
}

type fileData struct {
	ID          string
	Ident       string
	Names       []fileName
	HasSorted   bool
	SortedLines []string
	Likely      string
}

// Ident returns the prefix of the Go variables of a locale: "yo_BJ" becomes "yoBJ".
func Ident(id string) string {
	parts := strings.Split(id, "_")
	return parts[0] + strings.Join(parts[1:], "")
}

// FileName returns the name of the data file of a locale.
func FileName(id string) string {
	return strings.ToLower(id) + ".go"
}

// Write writes the data file of loc in gofmt style.
func Write(w io.Writer, loc *cldr.Locale) error {
	data := fileData{
		ID:        loc.ID,
		Ident:     Ident(loc.ID),
		HasSorted: loc.Sorted != nil,
		Likely:    quoteList(loc.Likely),
	}

	// numeric codes first
	codes := maps.Keys(loc.Names)
	slices.Sort(codes)
	var numeric, alpha []string
	for _, code := range codes {
		if regionnames.RegionCode(code).IsNumeric() {
			numeric = append(numeric, code)
		} else {
			alpha = append(alpha, code)
		}
	}
	for _, code := range numeric {
		data.Names = append(data.Names, fileName{Code: code, Name: loc.Names[code]})
	}
	for i, code := range alpha {
		data.Names = append(data.Names, fileName{Code: code, Name: loc.Names[code], Gap: i == 0 && len(numeric) > 0})
	}

	for i := 0; i < len(loc.Sorted); i += codesPerLine {
		end := min(i+codesPerLine, len(loc.Sorted))
		data.SortedLines = append(data.SortedLines, quoteList(loc.Sorted[i:end])+",")
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %w", loc.ID, err)
	}
	_, err = w.Write(src)
	return err
}

func quoteList(codes []string) string {
	quoted := make([]string, len(codes))
	for i, code := range codes {
		quoted[i] = strconv.Quote(code)
	}
	return strings.Join(quoted, ", ")
}
