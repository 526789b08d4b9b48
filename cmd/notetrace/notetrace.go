// Command notetrace parses note text from stdin and dumps the result.
//
// The trace format shows the block and inline run structure, html renders
// the preview HTML, and text renders styled terminal output (with SGR
// attributes only when stdout is a terminal).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/TekkadanPlays/ribbit-notetext/pkg/notemd"
	"github.com/TekkadanPlays/ribbit-notetext/pkg/styledtext"
)

var format = flag.String("format", "trace", "output format: trace, html or text")

func main() {
	flag.Parse()
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	src := string(text)

	switch *format {
	case "trace":
		fmt.Println(notemd.RenderString(src, &notemd.TraceCodec{}))
	case "html":
		fmt.Print(notemd.RenderString(src, &notemd.HTMLCodec{}))
	case "text":
		var c notemd.StyledCodec
		notemd.Render(src, &c)
		color := isTerminal(os.Stdout)
		for _, block := range c.Blocks {
			fmt.Println(renderBlock(block, color))
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}
}

func renderBlock(t styledtext.Text, color bool) string {
	if color {
		return t.VTString()
	}
	return t.String()
}

// isTerminal determines whether the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
