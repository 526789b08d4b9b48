package notemd

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RunType enumerates the kinds of inline runs.
type RunType uint8

const (
	LiteralRun RunType = iota
	CodeRun
	BoldRun
	ItalicRun
	BoldItalicRun
	StrikethroughRun
	LinkRun
	SuperscriptRun
)

// String returns the name of the run type, as used by TraceCodec.
func (t RunType) String() string {
	switch t {
	case LiteralRun:
		return "Literal"
	case CodeRun:
		return "Code"
	case BoldRun:
		return "Bold"
	case ItalicRun:
		return "Italic"
	case BoldItalicRun:
		return "BoldItalic"
	case StrikethroughRun:
		return "Strikethrough"
	case LinkRun:
		return "Link"
	case SuperscriptRun:
		return "Superscript"
	}
	return "BadRun"
}

// Run is a node in the styled run tree of a block's text.
//
// Literal, code and link runs carry their visible text in Text. Style runs
// (bold, italic, bold-italic, strikethrough, superscript) carry their
// recursively parsed content in Content and have empty Text. Link runs
// additionally carry the target URL in Dest; the URL is an annotation and
// never part of the visible text.
type Run struct {
	Type    RunType
	Text    string
	Dest    string
	Content []Run
}

// An inline pattern. The regexp's capture group 1 holds the visible inner
// text (group 2 is a fallback for patterns with two delimiter forms, group
// 2 of the link pattern holds the URL). Patterns with recurse set have
// their inner text reparsed; wordBoundary rejects matches whose delimiters
// touch a word character on the outside.
type inlinePattern struct {
	regexp       *regexp.Regexp
	typ          RunType
	recurse      bool
	wordBoundary bool
	// Delimiters made of a repeated character close on the rightmost
	// characters of a longer run, so "**bold *italic***" nests instead of
	// leaving a stray star.
	runDelimited bool
}

// In priority order; the scan takes the leftmost match, with earlier
// patterns winning ties.
var inlinePatterns = []inlinePattern{
	{regexp: regexp.MustCompile("(?s)```(.+?)```"), typ: CodeRun},
	{regexp: regexp.MustCompile("`([^`]+)`"), typ: CodeRun},
	{regexp: regexp.MustCompile(`(?s)\*\*\*(.+?)\*\*\*|___(.+?)___`), typ: BoldItalicRun, recurse: true, runDelimited: true},
	{regexp: regexp.MustCompile(`(?s)\*\*(.+?)\*\*|__(.+?)__`), typ: BoldRun, recurse: true, runDelimited: true},
	{regexp: regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`), typ: ItalicRun, recurse: true, wordBoundary: true},
	{regexp: regexp.MustCompile(`(?s)~~(.+?)~~`), typ: StrikethroughRun, recurse: true, runDelimited: true},
	{regexp: regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`), typ: LinkRun},
	{regexp: regexp.MustCompile(`\^\(([^)]+)\)|\^(\S+)`), typ: SuperscriptRun, recurse: true},
}

// ParseInline resolves the inline markup of a block's text into a styled
// run tree. It never fails; text without recognizable markup comes back as
// a single literal run.
func ParseInline(text string) []Run {
	var runs []Run
	pos := 0
	for pos < len(text) {
		pi, m := leftmostMatch(text, pos)
		if m == nil {
			break
		}
		if m[0] > pos {
			runs = append(runs, Run{Type: LiteralRun, Text: text[pos:m[0]]})
		}
		runs = append(runs, makeRun(inlinePatterns[pi], text, m))
		pos = m[1]
	}
	if pos < len(text) {
		runs = append(runs, Run{Type: LiteralRun, Text: text[pos:]})
	}
	return runs
}

// leftmostMatch searches every pattern from pos and returns the index of
// the pattern with the globally earliest match, along with the match's
// index pairs (offsets into text). Returns a nil match if no pattern
// matches anywhere in the remaining text.
func leftmostMatch(text string, pos int) (int, []int) {
	best := -1
	var bestMatch []int
	for i, p := range inlinePatterns {
		m := findFrom(p, text, pos)
		if m == nil {
			continue
		}
		if best == -1 || m[0] < bestMatch[0] {
			best, bestMatch = i, m
		}
	}
	return best, bestMatch
}

// findFrom finds p's first acceptable match at or after pos. For
// word-boundary patterns, matches whose delimiters are adjacent to a word
// character on the outside are skipped, so snake_case_names are not
// mis-parsed as italic.
func findFrom(p inlinePattern, text string, pos int) []int {
	for pos <= len(text) {
		m := p.regexp.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			return nil
		}
		for i := range m {
			if m[i] >= 0 {
				m[i] += pos
			}
		}
		if !p.wordBoundary || isolated(text, m[0], m[1]) {
			if p.runDelimited {
				extendCloser(text, m)
			}
			return m
		}
		pos = m[0] + 1
	}
	return nil
}

// extendCloser slides a repeated-character closing delimiter to the right
// end of its run, growing the captured inner text accordingly.
func extendCloser(text string, m []int) {
	c := text[m[1]-1]
	for i := 2; i+1 < len(m); i += 2 {
		if m[i] < 0 {
			continue
		}
		for m[1] < len(text) && text[m[1]] == c {
			m[i+1]++
			m[1]++
		}
		return
	}
}

// isolated reports whether the characters just outside text[begin:end] are
// both non-word characters (or the text boundary).
func isolated(text string, begin, end int) bool {
	before, n := utf8.DecodeLastRuneInString(text[:begin])
	if n > 0 && isWordRune(before) {
		return false
	}
	after, n := utf8.DecodeRuneInString(text[end:])
	return n == 0 || !isWordRune(after)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// makeRun builds the run for a pattern match. Code spans keep their inner
// text verbatim; link runs keep the link text literal and attach the URL;
// all other runs recurse into their inner text.
func makeRun(p inlinePattern, text string, m []int) Run {
	inner := captured(text, m)
	switch {
	case p.typ == LinkRun:
		return Run{Type: LinkRun, Text: inner, Dest: text[m[4]:m[5]]}
	case p.recurse:
		return Run{Type: p.typ, Content: ParseInline(inner)}
	default:
		return Run{Type: p.typ, Text: inner}
	}
}

// captured returns the text of the first participating capture group.
func captured(text string, m []int) string {
	for i := 2; i+1 < len(m); i += 2 {
		if m[i] >= 0 {
			return text[m[i]:m[i+1]]
		}
	}
	return ""
}

// PlainText flattens a run tree back into its visible text, with all
// markup and annotations dropped. Useful for previews and notifications
// where styling cannot be displayed.
func PlainText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
		sb.WriteString(PlainText(r.Content))
	}
	return sb.String()
}
