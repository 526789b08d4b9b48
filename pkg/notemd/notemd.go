// Package notemd parses the Markdown subset used in social notes.
//
// The subset is deliberately small: the block grammar knows headings,
// paragraphs, blockquotes, fenced code, single-line list items and
// horizontal rules; the inline grammar knows bold, italic, bold-italic,
// strikethrough, code spans, links and superscripts. Anything else is
// literal text. Parsing never fails: malformed input degrades to literal
// runs or best-effort grouping, so every string renders as something.
//
// Parsing happens in two stages. ParseBlocks (or the streaming Render)
// splits the source into typed blocks line by line; ParseInline resolves a
// block's text into a tree of styled runs. Both are pure functions of
// their input and safe to memoize (see Cache).
package notemd

import (
	"regexp"
	"strings"
)

// BlockType enumerates the kinds of blocks the subset knows.
type BlockType uint8

const (
	Paragraph BlockType = iota
	Heading
	Blockquote
	CodeBlock
	ListItem
	HorizontalRule
)

// String returns the name of the block type, as used by TraceCodec.
func (t BlockType) String() string {
	switch t {
	case Paragraph:
		return "Paragraph"
	case Heading:
		return "Heading"
	case Blockquote:
		return "Blockquote"
	case CodeBlock:
		return "CodeBlock"
	case ListItem:
		return "ListItem"
	case HorizontalRule:
		return "HorizontalRule"
	}
	return "BadBlock"
}

// Block is one structural unit of a note. Which fields are meaningful
// depends on Type:
//
//   - Heading: Level (1 to 6) and Text.
//   - Paragraph: Text, possibly with embedded newlines (soft wrapping).
//   - Blockquote: Text, quote markers stripped, lines joined by newline.
//   - CodeBlock: Text holds the code verbatim, fences stripped.
//   - ListItem: Bullet is "•" for bullet items or the original number
//     followed by "." for ordered items; Text is the item's text.
//   - HorizontalRule: no payload.
//
// Text holds raw markup; pass it to ParseInline to resolve inline styles.
// CodeBlock text is always literal and must not be inline-parsed.
type Block struct {
	Type   BlockType
	Level  int
	Bullet string
	Text   string
}

// Codec is the interface for block output. Render calls Do for every block
// as soon as it has been scanned.
type Codec interface{ Do(Block) }

// StringerCodec is a Codec that also builds a string output.
type StringerCodec interface {
	Codec
	String() string
}

// Render parses src and streams the resulting blocks to c in source order.
func Render(src string, c Codec) {
	p := blockParser{lines: lineSplitter{src, 0}, codec: c}
	p.run()
}

// RenderString renders src with a codec that produces a string.
func RenderString(src string, c StringerCodec) string {
	Render(src, c)
	return c.String()
}

// ParseBlocks parses src and collects all blocks into a slice.
func ParseBlocks(src string) []Block {
	var c blocksCodec
	Render(src, &c)
	return c.blocks
}

type blocksCodec struct{ blocks []Block }

func (c *blocksCodec) Do(b Block) { c.blocks = append(c.blocks, b) }

var (
	horizontalRuleRegexp = regexp.MustCompile(`^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
	headingRegexp        = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	blockquoteRegexp     = regexp.MustCompile(`^>\s?(.*)$`)
	bulletItemRegexp     = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
	orderedItemRegexp    = regexp.MustCompile(`^\s*(\d+)\.\s+(.*)$`)

	// Single-line fences may carry a short language hint before the code,
	// like "```go fmt.Println(1)```".
	languageHintRegexp = regexp.MustCompile(`^[0-9A-Za-z]{1,11} `)
)

type blockParser struct {
	lines lineSplitter
	codec Codec
}

// run scans the source line by line. At each position the block-starting
// conditions are tested in fixed priority order and the first match
// consumes one or more lines. Blank lines separate blocks and are never
// emitted.
func (p *blockParser) run() {
	for p.lines.more() {
		line := p.lines.next()
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "```"):
			p.parseFence(trimmed)
		case horizontalRuleRegexp.MatchString(line):
			p.codec.Do(Block{Type: HorizontalRule})
		case headingRegexp.MatchString(line):
			m := headingRegexp.FindStringSubmatch(line)
			p.codec.Do(Block{Type: Heading, Level: len(m[1]), Text: m[2]})
		case blockquoteRegexp.MatchString(line):
			p.parseBlockquote(line)
		case bulletItemRegexp.MatchString(line):
			m := bulletItemRegexp.FindStringSubmatch(line)
			p.codec.Do(Block{Type: ListItem, Bullet: "•", Text: m[1]})
		case orderedItemRegexp.MatchString(line):
			m := orderedItemRegexp.FindStringSubmatch(line)
			p.codec.Do(Block{Type: ListItem, Bullet: m[1] + ".", Text: m[2]})
		case isBlankLine(line):
			// Consumed, no block.
		default:
			p.parseParagraph(line)
		}
	}
}

// parseFence handles both fence forms. A line that opens and closes a
// fence itself ("```go x:=1```") is a single-line code block; its language
// hint, if any, is stripped. Otherwise lines are collected verbatim until
// a closing fence or the end of input.
func (p *blockParser) parseFence(opener string) {
	if strings.HasSuffix(opener, "```") && len(opener) > 6 {
		code := opener[3 : len(opener)-3]
		if hint := languageHintRegexp.FindString(code); hint != "" {
			code = code[len(hint):]
		}
		p.codec.Do(Block{Type: CodeBlock, Text: code})
		return
	}
	var lines []string
	for p.lines.more() {
		line := p.lines.next()
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "```") {
			break
		}
		lines = append(lines, line)
	}
	p.codec.Do(Block{Type: CodeBlock, Text: strings.Join(lines, "\n")})
}

// parseBlockquote greedily consumes consecutive quoted lines, stripping
// the marker from each.
func (p *blockParser) parseBlockquote(line string) {
	lines := []string{blockquoteRegexp.FindStringSubmatch(line)[1]}
	for p.lines.more() {
		next := p.lines.next()
		m := blockquoteRegexp.FindStringSubmatch(next)
		if m == nil {
			p.lines.backup()
			break
		}
		lines = append(lines, m[1])
	}
	p.codec.Do(Block{Type: Blockquote, Text: strings.Join(lines, "\n")})
}

// parseParagraph collects the current line and every following line up to
// the first blank line or line that starts another block kind.
func (p *blockParser) parseParagraph(line string) {
	lines := []string{line}
	for p.lines.more() {
		next := p.lines.next()
		if isBlankLine(next) || startsBlock(next) {
			p.lines.backup()
			break
		}
		lines = append(lines, next)
	}
	p.codec.Do(Block{Type: Paragraph, Text: strings.Join(lines, "\n")})
}

// startsBlock reports whether the line would start a non-paragraph block,
// terminating a paragraph without being consumed by it.
func startsBlock(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```") ||
		horizontalRuleRegexp.MatchString(line) ||
		headingRegexp.MatchString(line) ||
		blockquoteRegexp.MatchString(line) ||
		bulletItemRegexp.MatchString(line) ||
		orderedItemRegexp.MatchString(line)
}

func isBlankLine(line string) bool {
	return strings.Trim(line, " \t") == ""
}

type lineSplitter struct {
	text string
	pos  int
}

func (s *lineSplitter) more() bool {
	return s.pos < len(s.text)
}

func (s *lineSplitter) next() string {
	begin := s.pos
	delta := strings.IndexByte(s.text[begin:], '\n')
	if delta == -1 {
		s.pos = len(s.text)
		return s.text[begin:]
	}
	s.pos += delta + 1
	return s.text[begin : s.pos-1]
}

func (s *lineSplitter) backup() {
	if s.pos == 0 {
		return
	}
	s.pos = 1 + strings.LastIndexByte(s.text[:s.pos-1], '\n')
}
