package notemd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/TekkadanPlays/ribbit-notetext/pkg/notemd"
)

func literal(s string) Run { return Run{Type: LiteralRun, Text: s} }

var inlineTests = []struct {
	name string
	src  string
	want []Run
}{
	{
		name: "empty text",
		src:  "",
		want: nil,
	},
	{
		name: "plain text is one literal run",
		src:  "nothing to see",
		want: []Run{literal("nothing to see")},
	},
	{
		name: "bold",
		src:  "**b**",
		want: []Run{{Type: BoldRun, Content: []Run{literal("b")}}},
	},
	{
		name: "bold with underscores",
		src:  "__b__",
		want: []Run{{Type: BoldRun, Content: []Run{literal("b")}}},
	},
	{
		name: "italic",
		src:  "an *em* word",
		want: []Run{
			literal("an "),
			{Type: ItalicRun, Content: []Run{literal("em")}},
			literal(" word"),
		},
	},
	{
		name: "bold italic",
		src:  "***x***",
		want: []Run{{Type: BoldItalicRun, Content: []Run{literal("x")}}},
	},
	{
		name: "snake_case is not italic",
		src:  "snake_case_word",
		want: []Run{literal("snake_case_word")},
	},
	{
		name: "italic rejected when inside a word",
		src:  "a_b_c stays",
		want: []Run{literal("a_b_c stays")},
	},
	{
		name: "bold containing italic",
		src:  "**bold *and italic***",
		want: []Run{{Type: BoldRun, Content: []Run{
			literal("bold "),
			{Type: ItalicRun, Content: []Run{literal("and italic")}},
		}}},
	},
	{
		name: "bold containing link",
		src:  "**see [x](u)**",
		want: []Run{{Type: BoldRun, Content: []Run{
			literal("see "),
			{Type: LinkRun, Text: "x", Dest: "u"},
		}}},
	},
	{
		name: "two bold spans stay separate",
		src:  "**a** and **b**",
		want: []Run{
			{Type: BoldRun, Content: []Run{literal("a")}},
			literal(" and "),
			{Type: BoldRun, Content: []Run{literal("b")}},
		},
	},
	{
		name: "strikethrough",
		src:  "~~gone~~",
		want: []Run{{Type: StrikethroughRun, Content: []Run{literal("gone")}}},
	},
	{
		name: "code span keeps markup verbatim",
		src:  "`**x**`",
		want: []Run{{Type: CodeRun, Text: "**x**"}},
	},
	{
		name: "triple backtick code span",
		src:  "```a`b```",
		want: []Run{{Type: CodeRun, Text: "a`b"}},
	},
	{
		name: "unclosed backtick is literal",
		src:  "a ` b",
		want: []Run{literal("a ` b")},
	},
	{
		name: "link",
		src:  "[click](https://x.test)",
		want: []Run{{Type: LinkRun, Text: "click", Dest: "https://x.test"}},
	},
	{
		name: "link text is not styled further",
		src:  "[**raw**](u)",
		want: []Run{{Type: LinkRun, Text: "**raw**", Dest: "u"}},
	},
	{
		name: "superscript token",
		src:  "x^2",
		want: []Run{
			literal("x"),
			{Type: SuperscriptRun, Content: []Run{literal("2")}},
		},
	},
	{
		name: "parenthesized superscript",
		src:  "e^(i pi)",
		want: []Run{
			literal("e"),
			{Type: SuperscriptRun, Content: []Run{literal("i pi")}},
		},
	},
	{
		name: "leftmost match wins across patterns",
		src:  "~~s~~ **b**",
		want: []Run{
			{Type: StrikethroughRun, Content: []Run{literal("s")}},
			literal(" "),
			{Type: BoldRun, Content: []Run{literal("b")}},
		},
	},
	{
		name: "literal tail after last match",
		src:  "**b** tail",
		want: []Run{
			{Type: BoldRun, Content: []Run{literal("b")}},
			literal(" tail"),
		},
	},
}

func TestParseInline(t *testing.T) {
	for _, tc := range inlineTests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseInline(tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseInline(%q) (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct{ src, want string }{
		{"**bold *and italic***", "bold and italic"},
		{"[click](https://x.test)", "click"},
		{"`code` and ~~gone~~", "code and gone"},
		{"no markup", "no markup"},
	}
	for _, tc := range tests {
		if got := PlainText(ParseInline(tc.src)); got != tc.want {
			t.Errorf("PlainText(ParseInline(%q)) = %q, want %q", tc.src, got, tc.want)
		}
	}
}

// Re-parsing the text of a literal run yields the identical single run.
func TestParseInline_LiteralRoundTrip(t *testing.T) {
	for _, src := range []string{"plain words", "numbers 123", "snake_case_word"} {
		runs := ParseInline(src)
		for _, r := range runs {
			if r.Type != LiteralRun {
				t.Fatalf("ParseInline(%q) has non-literal run %v", src, r.Type)
			}
			again := ParseInline(r.Text)
			if diff := cmp.Diff([]Run{r}, again); diff != "" {
				t.Errorf("round trip of %q (-want +got):\n%s", r.Text, diff)
			}
		}
	}
}
