/*
Package texhtml turns the TeX-flavoured markup of jbovlaste definitions into
HTML.

Supported are inline math with sub- and superscripts, \emph and \textbf,
indented lines (as used for tables in definitions) and "inchoative" tables.

	ToHTML("$x_1$ is $10^2*2$ examples of $x_{2}$.")
	  => "x<sub>1</sub> is 10<sup>2×2</sup> examples of x<sub>2</sub>."
*/
package texhtml

import (
	"regexp"
	"strings"
)

var (
	mathPattern       = regexp.MustCompile(`\$(.+?)\$`)
	typographyPattern = regexp.MustCompile(`\\(emph|textbf)\{(.+?)\}`)
	linesPattern      = regexp.MustCompile(`\s\s+(.+)`)
	inchoativePattern = regexp.MustCompile(`inchoative\s\s+(----.+)`)
)

const monospace = `<span style="font-family: monospace">`

// ToHTML converts definition markup to HTML. Text is not escaped.
//
// Inchoative tables are handled before indented lines, otherwise the line
// rule would consume their leading white space.
func ToHTML(tex string) string {
	tex = replaceSubmatchFunc(mathPattern, tex, math)
	tex = replaceSubmatchFunc(typographyPattern, tex, typography)
	tex = replaceSubmatchFunc(inchoativePattern, tex, inchoative)
	tex = replaceSubmatchFunc(linesPattern, tex, lines)
	return tex
}

// math renders the inside of $...$. Each side of an equation may carry one
// subscript or superscript.
func math(groups []string) string {
	terms := strings.Split(groups[1], "=")
	for i, x := range terms {
		x = strings.NewReplacer("{", "", "}", "", "*", "×").Replace(x)
		if parts := strings.Split(x, "_"); len(parts) > 1 {
			x = parts[0] + "<sub>" + parts[1] + "</sub>"
		} else if parts := strings.Split(x, "^"); len(parts) > 1 {
			x = parts[0] + "<sup>" + parts[1] + "</sup>"
		}
		terms[i] = x
	}
	return strings.Join(terms, "=")
}

func typography(groups []string) string {
	switch groups[1] {
	case "emph":
		return "<em>" + groups[2] + "</em>"
	case "textbf":
		return "<strong>" + groups[2] + "</strong>"
	}
	return groups[0]
}

// lines starts a new line for text following a run of white space. Lines
// starting with '|' or '>' are table rows and set in monospace.
func lines(groups []string) string {
	line := groups[1]
	switch {
	case strings.HasPrefix(line, "|"):
		return "\n" + monospace + "    " + line + "</span>"
	case strings.HasPrefix(line, ">"):
		return "\n" + monospace + "   " + line + "</span>"
	}
	return "\n" + line
}

func inchoative(groups []string) string {
	return "inchoative\n" + monospace + groups[1] + "</span>"
}

// replaceSubmatchFunc is like regexp.ReplaceAllStringFunc, but hands the
// submatches to repl.
func replaceSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var sb strings.Builder
	prev := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		sb.WriteString(s[prev:m[0]])
		sb.WriteString(repl(groups))
		prev = m[1]
	}
	sb.WriteString(s[prev:])
	return sb.String()
}
