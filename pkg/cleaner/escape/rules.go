package escape

import (
	"regexp"
	"strings"
)

// Category names one class of markdown construct the rule table repairs.
// The table order below is a compatibility contract: later categories
// rely on earlier ones having already run (bold before single emphasis,
// structure before generic punctuation). Reordering changes output.
type Category string

const (
	CategoryHeaders       Category = "headers"
	CategoryLists         Category = "lists"
	CategoryOrdinals      Category = "ordinals"
	CategoryPlus          Category = "plus"
	CategoryUnderscores   Category = "underscores"
	CategoryEmphasis      Category = "emphasis"
	CategoryCode          Category = "code"
	CategoryLinks         Category = "links"
	CategoryHRules        Category = "hrules"
	CategoryBlockquotes   Category = "blockquotes"
	CategoryStrikethrough Category = "strikethrough"
	CategoryTrailing      Category = "trailing"
	CategoryPunctuation   Category = "punctuation"
)

// sentinel temporarily replaces `\\` pairs so no rule can eat half of an
// intentional literal backslash. NUL never appears in human-authored
// markdown.
const sentinel = "\x00"

type rule struct {
	re   *regexp.Regexp
	repl string
}

type ruleGroup struct {
	category Category
	rules    []rule
}

var ruleTable = []ruleGroup{
	{CategoryHeaders, []rule{
		// Line-start headers normalize to a single space after the marks.
		{regexp.MustCompile(`(?m)^\\(#{1,6})[ \t]*`), "$1 "},
		{regexp.MustCompile(`\\(#{1,6})`), "$1"},
	}},
	{CategoryLists, []rule{
		{regexp.MustCompile(`(?m)(^|\s)\\([-*+])\s`), "$1$2 "},
	}},
	{CategoryOrdinals, []rule{
		{regexp.MustCompile(`(?m)(^|\s)\\(\d+)\.`), "$1$2."},
		{regexp.MustCompile(`\\(\d+)\.`), "$1."},
	}},
	{CategoryPlus, []rule{
		{regexp.MustCompile(`\\\+`), "+"},
	}},
	{CategoryUnderscores, []rule{
		// Word-internal escapes like project\_name first, then the rest.
		{regexp.MustCompile(`(\w)\\_`), "${1}_"},
		{regexp.MustCompile(`\\_(\w)`), "_$1"},
		{regexp.MustCompile(`\\_`), "_"},
	}},
	{CategoryEmphasis, []rule{
		// Bold pairs resolve before single emphasis so one layer is not
		// left half-escaped.
		{regexp.MustCompile("\\\\\\*\\\\\\*([^*\n]+)\\\\\\*\\\\\\*"), "**$1**"},
		{regexp.MustCompile("\\\\\\*([^*\n]+)\\\\\\*"), "*$1*"},
		{regexp.MustCompile(`\\([*_])`), "$1"},
	}},
	{CategoryCode, []rule{
		{regexp.MustCompile("\\\\(\x60)"), "$1"},
		{regexp.MustCompile("(?m)(\x60)\\\\([ \t]|$)"), "$1$2"},
	}},
	{CategoryLinks, []rule{
		// Whole \[text\]\(url\) units before lone brackets and parens.
		{regexp.MustCompile("\\\\!(\\\\?\\[)"), "!$1"},
		{regexp.MustCompile("\\\\\\[([^\\[\\]\n]*)\\\\\\]\\\\?\\(([^()\n]*)\\\\?\\)"), "[$1]($2)"},
		{regexp.MustCompile(`\\([\[\]])`), "$1"},
		{regexp.MustCompile(`\\([()])`), "$1"},
	}},
	{CategoryHRules, []rule{
		{regexp.MustCompile(`\\([-*_]{3,})`), "$1"},
	}},
	{CategoryBlockquotes, []rule{
		{regexp.MustCompile(`(?m)(^|\s)\\(>)\s`), "$1$2 "},
	}},
	{CategoryStrikethrough, []rule{
		{regexp.MustCompile(`\\(~~)`), "$1"},
	}},
	{CategoryTrailing, []rule{
		{regexp.MustCompile(`(?m)\\[ \t]*$`), ""},
	}},
	{CategoryPunctuation, []rule{
		{regexp.MustCompile(`\\([.,:;!?&'"])`), "$1"},
	}},
}

// Categories returns the rule categories in application order.
func Categories() []Category {
	out := make([]Category, len(ruleTable))
	for i, g := range ruleTable {
		out[i] = g.category
	}
	return out
}

// applyRules runs the full rule table over text and returns the rewritten
// text plus the categories that fired. A category counts as fired when
// applying its rules changed the text. Content comparison matters here:
// the header space normalization rewrites \#Title to "# Title" without
// changing the length, and that must still count.
func applyRules(text string) (string, []Category) {
	// Protect intentional double backslashes for the whole pass.
	out := strings.ReplaceAll(text, `\\`, sentinel)

	var fired []Category
	for _, g := range ruleTable {
		before := out
		for _, r := range g.rules {
			out = r.re.ReplaceAllString(out, r.repl)
		}
		if out != before {
			fired = append(fired, g.category)
		}
	}

	return strings.ReplaceAll(out, sentinel, `\\`), fired
}
