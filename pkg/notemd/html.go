package notemd

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	escapeHTML = strings.NewReplacer(
		"&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;").Replace
	escapeURL = strings.NewReplacer(
		`"`, "%22", `\`, "%5C", " ", "%20", "`", "%60",
		"[", "%5B", "]", "%5D", "<", "%3C", ">", "%3E").Replace
)

// HTMLCodec converts a note to HTML, for previews and tooling. Consecutive
// list items are grouped into one list element.
type HTMLCodec struct {
	strings.Builder
	// "" when not inside a list, otherwise "ul" or "ol".
	list string
}

func (c *HTMLCodec) Do(b Block) {
	if b.Type != ListItem {
		c.closeList()
	}
	switch b.Type {
	case Heading:
		fmt.Fprintf(c, "<h%d>", b.Level)
		c.writeRuns(ParseInline(b.Text))
		fmt.Fprintf(c, "</h%d>\n", b.Level)
	case Paragraph:
		c.WriteString("<p>")
		c.writeRuns(ParseInline(b.Text))
		c.WriteString("</p>\n")
	case Blockquote:
		c.WriteString("<blockquote>")
		c.writeRuns(ParseInline(b.Text))
		c.WriteString("</blockquote>\n")
	case CodeBlock:
		c.WriteString("<pre><code>")
		c.WriteString(escapeHTML(b.Text))
		c.WriteString("\n</code></pre>\n")
	case ListItem:
		c.openList(b)
		c.WriteString("<li>")
		c.writeRuns(ParseInline(b.Text))
		c.WriteString("</li>\n")
	case HorizontalRule:
		c.WriteString("<hr />\n")
	}
}

// String finalizes the output, closing any list still open.
func (c *HTMLCodec) String() string {
	c.closeList()
	return c.Builder.String()
}

func (c *HTMLCodec) openList(b Block) {
	tag := "ul"
	if b.Bullet != "•" {
		tag = "ol"
	}
	if c.list == tag {
		return
	}
	c.closeList()
	c.list = tag
	if tag == "ul" {
		c.WriteString("<ul>\n")
		return
	}
	start, _ := strconv.Atoi(strings.TrimSuffix(b.Bullet, "."))
	if start != 1 {
		fmt.Fprintf(c, "<ol start=\"%d\">\n", start)
	} else {
		c.WriteString("<ol>\n")
	}
}

func (c *HTMLCodec) closeList() {
	if c.list != "" {
		fmt.Fprintf(c, "</%s>\n", c.list)
		c.list = ""
	}
}

func (c *HTMLCodec) writeRuns(runs []Run) {
	for _, r := range runs {
		switch r.Type {
		case LiteralRun:
			c.WriteString(escapeHTML(r.Text))
		case CodeRun:
			c.WriteString("<code>")
			c.WriteString(escapeHTML(r.Text))
			c.WriteString("</code>")
		case BoldRun:
			c.wrapRuns("<strong>", r.Content, "</strong>")
		case ItalicRun:
			c.wrapRuns("<em>", r.Content, "</em>")
		case BoldItalicRun:
			c.wrapRuns("<strong><em>", r.Content, "</em></strong>")
		case StrikethroughRun:
			c.wrapRuns("<del>", r.Content, "</del>")
		case SuperscriptRun:
			c.wrapRuns("<sup>", r.Content, "</sup>")
		case LinkRun:
			fmt.Fprintf(c, `<a href="%s">`, escapeURL(r.Dest))
			c.WriteString(escapeHTML(r.Text))
			c.WriteString("</a>")
		}
	}
}

func (c *HTMLCodec) wrapRuns(start string, runs []Run, end string) {
	c.WriteString(start)
	c.writeRuns(runs)
	c.WriteString(end)
}
