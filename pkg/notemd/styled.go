package notemd

import (
	"github.com/TekkadanPlays/ribbit-notetext/pkg/styledtext"
)

// Presentation constants for headings. Levels 1 to 5 map to discrete font
// scales; levels 1 to 3 are bold, deeper levels semibold.
var headingScales = []float64{1.6, 1.4, 1.2, 1.1, 1.0}

// HeadingScale returns the font scale multiplier for a heading level.
func HeadingScale(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(headingScales) {
		level = len(headingScales)
	}
	return headingScales[level-1]
}

// HeadingWeight returns the font weight for a heading level.
func HeadingWeight(level int) styledtext.Weight {
	if level <= 3 {
		return styledtext.Bold
	}
	return styledtext.Semibold
}

// StyledCodec flattens each block into a styledtext.Text, one Text per
// block, with nested run styles merged into per-segment annotations. It is
// the bridge between the parser and a text-layout collaborator.
type StyledCodec struct {
	Blocks []styledtext.Text
}

func (c *StyledCodec) Do(b Block) {
	var t styledtext.Text
	switch b.Type {
	case Heading:
		base := styledtext.Style{
			Weight: HeadingWeight(b.Level),
			Scale:  HeadingScale(b.Level),
		}
		t = flattenRuns(ParseInline(b.Text), base)
	case CodeBlock:
		t = styledtext.T(b.Text, styledtext.Style{Code: true})
	case ListItem:
		t = styledtext.T(b.Bullet+" ", styledtext.Style{})
		t = t.ConcatText(flattenRuns(ParseInline(b.Text), styledtext.Style{}))
	case HorizontalRule:
		t = styledtext.T("────────", styledtext.Style{})
	default:
		t = flattenRuns(ParseInline(b.Text), styledtext.Style{})
	}
	c.Blocks = append(c.Blocks, t)
}

var runStyles = map[RunType]styledtext.Style{
	CodeRun:          {Code: true},
	BoldRun:          {Weight: styledtext.Bold},
	ItalicRun:        {Italic: true},
	BoldItalicRun:    {Weight: styledtext.Bold, Italic: true},
	StrikethroughRun: {Strikethrough: true},
	SuperscriptRun:   {Superscript: true},
}

func flattenRuns(runs []Run, base styledtext.Style) styledtext.Text {
	var t styledtext.Text
	for _, r := range runs {
		switch r.Type {
		case LiteralRun:
			t = append(t, &styledtext.Segment{Style: base, Text: r.Text})
		case LinkRun:
			style := base.Merge(styledtext.Style{Link: r.Dest})
			t = append(t, &styledtext.Segment{Style: style, Text: r.Text})
		default:
			style := base.Merge(runStyles[r.Type])
			if r.Text != "" {
				t = append(t, &styledtext.Segment{Style: style, Text: r.Text})
			}
			t = t.ConcatText(flattenRuns(r.Content, style))
		}
	}
	return t
}
