package html

import (
	"embed"
	"html/template"

	"github.com/dys2p/regionnames"
	"gitlab.com/golang-commonmark/markdown"
)

//go:embed *.html
var files embed.FS

func parse(fn ...string) *template.Template {
	fn = append([]string{"layout.html"}, fn...)
	return template.Must(template.New("layout.html").ParseFS(files, fn...))
}

var (
	About  = parse("about.html")
	Error  = parse("error.html")
	Picker = parse("picker.html")
)

var md = markdown.New(markdown.HTML(true), markdown.XHTMLOutput(true), markdown.Typographer(true))

// Markdown renders a trusted markdown document.
func Markdown(src []byte) template.HTML {
	return template.HTML(md.RenderToString(src))
}

type LocaleLink struct {
	BCP47    string
	Language Language
}

// Links returns the language switcher entries of the given locales.
func Links(ids []regionnames.LocaleID) []LocaleLink {
	links := make([]LocaleLink, len(ids))
	for i, id := range ids {
		links[i] = LocaleLink{
			BCP47:    id.BCP47(),
			Language: Language(id.BCP47()),
		}
	}
	return links
}

type AboutData struct {
	Content  template.HTML
	Language Language
	Locales  []LocaleLink
}

type ErrorData struct {
	Language Language
	Locales  []LocaleLink
	Msg      string
}

type PickerData struct {
	Entries  []regionnames.Entry
	Language Language
	Likely   []regionnames.Entry
	Locales  []LocaleLink
	Selected regionnames.RegionCode
	SelName  string
}

func (data *PickerData) IsSelected(code regionnames.RegionCode) bool {
	return data.Selected != "" && data.Selected == code
}
