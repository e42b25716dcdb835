package ui

import (
	"fmt"
	"io"
	"strings"

	"padbreak/internal/analysis"
)

// Report writes recovery diagnostics and results.
type Report struct {
	w      io.Writer
	styles Styles
}

// NewReport creates a report writing to w with the detected theme.
func NewReport(w io.Writer) *Report {
	return &Report{w: w, styles: NewStyles(w, DetectTheme())}
}

// Resolution writes the diagnostic block for one resolved position.
func (r *Report) Resolution(res analysis.Resolution) {
	s := r.styles
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Divider.Render("========"))
	fmt.Fprintf(r.w, "%s at index %d for %s\n",
		s.Label.Render("There is a space character (0x20)"), res.Position, res.Votes)
	fmt.Fprintf(r.w, "The maximum number of occurrence is %d %s\n",
		res.Max, s.Muted.Render("(ciphertexts "+joinInts(res.Winners)+")"))
	fmt.Fprintf(r.w, "Options: %s\n", res.OptionsString())

	choice := fmt.Sprintf("Choose 0x%02x -> key byte 0x%02x", res.Chosen, res.Key)
	if res.Tied() {
		choice += s.Warning.Render(" (tie broken by policy)")
	}
	fmt.Fprintln(r.w, s.Byte.Render(choice))
}

// Summary writes the recovered key, the decoded target and, when some
// positions received no votes, a warning listing them.
func (r *Report) Summary(res *analysis.Result) {
	s := r.styles

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n", s.Label.Render("Found key:"), res.Key.Hex())

	if missing := res.Unresolved(); len(missing) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Warning.Render(fmt.Sprintf("Unresolved positions (%d of %d): %s",
			len(missing), res.Key.Len(), joinInts(missing))))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n", s.Success.Render("Decoded message:"), res.Text)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
