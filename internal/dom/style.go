package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// declarations is an ordered inline style attribute
type declarations struct {
	keys   []string
	values map[string]string
}

func parseStyle(style string) *declarations {
	d := &declarations{values: make(map[string]string)}
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		d.set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return d
}

func (d *declarations) set(name, value string) {
	name = strings.ToLower(name)
	if name == "" {
		return
	}
	if _, ok := d.values[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.values[name] = value
}

func (d *declarations) get(name string) string {
	return d.values[strings.ToLower(name)]
}

func (d *declarations) String() string {
	parts := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		parts = append(parts, k+": "+d.values[k])
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

// setStyle updates one property of the inline style, keeping the others
func setStyle(sel *goquery.Selection, name, value string) {
	sel.Each(func(_ int, s *goquery.Selection) {
		d := parseStyle(s.AttrOr("style", ""))
		d.set(name, value)
		s.SetAttr("style", d.String())
	})
}

// styleOf returns one property of the first element's inline style
func styleOf(sel *goquery.Selection, name string) string {
	return parseStyle(sel.First().AttrOr("style", "")).get(name)
}
