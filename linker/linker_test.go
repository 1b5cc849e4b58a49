package linker

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

type mapDictionary struct {
	defs  map[string]string
	rafsi map[string]string
}

func (d mapDictionary) Definition(word string) (string, bool) {
	def, ok := d.defs[word]
	return def, ok
}

func (d mapDictionary) WordForRafsi(rafsi string) (string, bool) {
	word, ok := d.rafsi[rafsi]
	return word, ok
}

var sample = mapDictionary{
	defs: map[string]string{
		"mupli": "x<sub>1</sub> is an example/sample/specimen/instance/case/illustration of common property(s) x<sub>2</sub> of set x<sub>3</sub>.",
		"lojbo": "x<sub>1</sub> reflects Lojbanic culture.",
		"valsi": "x<sub>1</sub> is a word.",
		"bangu": "x<sub>1</sub> is a language.",
	},
	rafsi: map[string]string{
		"jbo": "lojbo",
		"vla": "valsi",
		"ban": "bangu",
	},
}

func TestBraces(t *testing.T) {
	l := New(sample, "")
	got := l.Braces("See also {mupli}.")
	want := `See also <a href="mupli" title="` + html.EscapeString(sample.defs["mupli"]) + `">mupli</a>.`
	if got != want {
		t.Fatalf("link mismatch:\n got %s\nwant %s", got, want)
	}
	got = l.Braces("See also {missing}.")
	want = `See also <a href="http://jbovlaste.lojban.org/dict/addvalsi.html?valsi=missing"` +
		` title="This word is missing, please add it!" class="missing">missing</a>.`
	if got != want {
		t.Fatalf("missing link mismatch:\n got %s\nwant %s", got, want)
	}
	if got := l.Braces("no references"); got != "no references" {
		t.Fatalf("text without braces must be unchanged, is %q", got)
	}
}

func TestMissingEscapesQuery(t *testing.T) {
	l := New(sample, "https://example.org/")
	got := l.Missing("fa'i", "fa'i")
	if !strings.HasPrefix(got, `<a href="https://example.org/dict/addvalsi.html?valsi=fa%27i"`) {
		t.Fatalf("unexpected missing link %s", got)
	}
}

func TestCompound(t *testing.T) {
	l := New(sample, "")
	got := l.Compound("jbovlaste")
	links := parseLinks(t, got)
	want := []struct{ href, text, class string }{
		{"lojbo", "jbo", ""},
		{"valsi", "vla", ""},
		{"http://jbovlaste.lojban.org/dict/addvalsi.html?valsi=ste", "ste", "missing"},
	}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, have %d in %s", len(want), len(links), got)
	}
	for i, w := range want {
		if links[i].href != w.href || links[i].text != w.text || links[i].class != w.class {
			t.Fatalf("link #%d: got %+v, want %+v", i, links[i], w)
		}
	}
}

func TestCompoundHyphenIsPlainText(t *testing.T) {
	l := New(sample, "")
	got := l.Compound("banrcme")
	if !strings.Contains(got, ">ban</a>r<a ") {
		t.Fatalf("hyphen letter should sit between links as text: %s", got)
	}
	if got := l.Compound("bangu"); got != "bangu" {
		t.Fatalf("undecomposable input must be returned unchanged, is %s", got)
	}
}

func TestLinkEscapesAttributes(t *testing.T) {
	def := `x<sub>1</sub> is "quoted" & more.`
	l := New(mapDictionary{defs: map[string]string{`a"b`: def}}, "")
	links := parseLinks(t, l.Link(`a"b`, `<a"b>`))
	if len(links) != 1 {
		t.Fatalf("expected a single link, have %d", len(links))
	}
	if links[0].href != `a"b` || links[0].title != def || links[0].text != `<a"b>` {
		t.Fatalf("attributes not preserved: %+v", links[0])
	}
	links = parseLinks(t, l.Missing(`x"y`, `x"y`))
	if len(links) != 1 || links[0].text != `x"y` || links[0].class != "missing" {
		t.Fatalf("missing link not escaped: %+v", links)
	}
}

type link struct{ href, title, text, class string }

func parseLinks(t *testing.T, fragment string) []link {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("cannot parse %q: %v", fragment, err)
	}
	var links []link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var lnk link
			for _, a := range n.Attr {
				switch a.Key {
				case "href":
					lnk.href = a.Val
				case "title":
					lnk.title = a.Val
				case "class":
					lnk.class = a.Val
				}
			}
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				lnk.text = n.FirstChild.Data
			}
			links = append(links, lnk)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}
