// Package styledtext models text with inline style annotations.
//
// It is the contract between the note parser and a text-layout
// collaborator: a Text is a flat list of Segments, each carrying the style
// that applies to its characters plus an optional link URL annotation. The
// URL is out-of-band metadata for tap-to-open wiring and is never part of
// the visible text.
package styledtext

import "strings"

// Weight is a font weight tier.
type Weight uint8

const (
	Regular Weight = iota
	Semibold
	Bold
)

// Style specifies how a segment of text shall be displayed.
type Style struct {
	Weight        Weight
	Italic        bool
	Strikethrough bool
	Code          bool
	Superscript   bool
	// Font scale multiplier relative to the base text size. The zero value
	// means unscaled.
	Scale float64
	// Link target URL, or "" for non-link segments.
	Link string
}

// Segment is a string with a single style applied to all of it.
type Segment struct {
	Style
	Text string
}

// Text is a sequence of styled segments.
type Text []*Segment

// T constructs a Text of a single segment.
func T(s string, style Style) Text {
	return Text{&Segment{Style: style, Text: s}}
}

// String returns the visible text without any styling.
func (t Text) String() string {
	var sb strings.Builder
	for _, seg := range t {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// ConcatText returns a new Text with t2's segments appended.
func (t Text) ConcatText(t2 Text) Text {
	return append(append(Text(nil), t...), t2...)
}

// SGR returns the SGR attribute sequence for the style, for displaying the
// segment on a terminal. Weight tiers map to bold, code to inverse,
// superscript to dim and links to underline; scale has no terminal
// equivalent.
func (s Style) SGR() string {
	var sgr []string
	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Weight != Regular, "1")
	addIf(s.Superscript, "2")
	addIf(s.Italic, "3")
	addIf(s.Link != "", "4")
	addIf(s.Code, "7")
	addIf(s.Strikethrough, "9")
	return strings.Join(sgr, ";")
}

// VTString renders the Text using VT100 SGR escape sequences.
func (t Text) VTString() string {
	var sb strings.Builder
	for _, seg := range t {
		sgr := seg.SGR()
		if sgr == "" {
			sb.WriteString(seg.Text)
		} else {
			sb.WriteString("\033[" + sgr + "m")
			sb.WriteString(seg.Text)
			sb.WriteString("\033[m")
		}
	}
	return sb.String()
}

// Merge returns s with the attributes of over laid on top: flags are OR'd,
// the heavier weight wins, and over's scale and link replace s's when set.
func (s Style) Merge(over Style) Style {
	merged := s
	if over.Weight > merged.Weight {
		merged.Weight = over.Weight
	}
	merged.Italic = merged.Italic || over.Italic
	merged.Strikethrough = merged.Strikethrough || over.Strikethrough
	merged.Code = merged.Code || over.Code
	merged.Superscript = merged.Superscript || over.Superscript
	if over.Scale != 0 {
		merged.Scale = over.Scale
	}
	if over.Link != "" {
		merged.Link = over.Link
	}
	return merged
}
