package notemd

import (
	"fmt"
	"strings"
)

// TraceCodec records the structure of every Block passed to its Do method,
// including the nested inline runs of the block's text. Mainly useful for
// debugging the parser and in tests.
type TraceCodec struct{ strings.Builder }

func (c *TraceCodec) Do(b Block) {
	if c.Len() > 0 {
		c.WriteByte('\n')
	}
	c.WriteString(b.Type.String())
	if b.Level != 0 {
		fmt.Fprintf(c, " Level=%d", b.Level)
	}
	if b.Bullet != "" {
		fmt.Fprintf(c, " Bullet=%q", b.Bullet)
	}
	switch b.Type {
	case CodeBlock:
		for _, line := range strings.Split(b.Text, "\n") {
			c.WriteString("\n  ")
			c.WriteString(line)
		}
	case HorizontalRule:
	default:
		c.writeRuns(ParseInline(b.Text), 1)
	}
}

func (c *TraceCodec) writeRuns(runs []Run, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range runs {
		c.WriteByte('\n')
		c.WriteString(indent)
		c.WriteString(r.Type.String())
		if r.Text != "" {
			fmt.Fprintf(c, " Text=%q", r.Text)
		}
		if r.Dest != "" {
			fmt.Fprintf(c, " Dest=%q", r.Dest)
		}
		c.writeRuns(r.Content, depth+1)
	}
}
