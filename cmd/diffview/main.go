// Command diffview renders a two-pane, syntax-highlighted diff of two
// files to the terminal, exercising the diffview package end-to-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
	"github.com/dacharyc/diffview"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("diffview failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("diffview", flag.ContinueOnError)
	context_ := fs.Int("context", diffview.DefaultContext, "number of context lines around changes")
	check := fs.Bool("check", false, "cross-check hunk/change-region counts against github.com/sergi/go-diff")
	noColor := fs.Bool("no-color", false, "disable ANSI styling")
	timeout := fs.Duration("timeout", 10*time.Second, "time budget for reading the two files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("diffview: usage: diffview [flags] <old-file> <new-file>")
	}
	oldPath, newPath := fs.Arg(0), fs.Arg(1)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	oldText, newText, err := readPair(ctx, oldPath, newPath)
	if err != nil {
		return err
	}

	vm := diffview.CreateViewModel(oldText, newText, *context_)

	r := newRenderer(*noColor, lexerFor(newPath))
	r.render(os.Stdout, vm)

	if *check {
		printCrossCheck(os.Stdout, oldText, newText)
	}
	return nil
}

// readPair reads both files, respecting ctx's deadline. The core diffview
// package is pure and synchronous (see SPEC_FULL.md §5); only this I/O
// boundary can fail or be cancelled.
func readPair(ctx context.Context, oldPath, newPath string) (oldText, newText string, err error) {
	type result struct {
		text string
		err  error
	}
	read := func(path string) <-chan result {
		c := make(chan result, 1)
		go func() {
			b, err := os.ReadFile(path)
			if err != nil {
				c <- result{err: fmt.Errorf("diffview: read %s: %w", path, err)}
				return
			}
			c <- result{text: string(b)}
		}()
		return c
	}

	oldCh, newCh := read(oldPath), read(newPath)
	var oldRes, newRes result
	for i := 0; i < 2; i++ {
		select {
		case oldRes = <-oldCh:
		case newRes = <-newCh:
		case <-ctx.Done():
			return "", "", fmt.Errorf("diffview: reading files: %w", ctx.Err())
		}
	}
	if oldRes.err != nil {
		return "", "", oldRes.err
	}
	if newRes.err != nil {
		return "", "", newRes.err
	}
	return oldRes.text, newRes.text, nil
}

// lexerFor returns the chroma lexer name for path's extension, or "" if
// none matches; "" tells the renderer to skip syntax highlighting.
func lexerFor(path string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if cfg == nil {
		return ""
	}
	return cfg.Name
}

type renderer struct {
	color bool
	lexer string

	contextStyle lipgloss.Style
	removedStyle lipgloss.Style
	addedStyle   lipgloss.Style
	gutterStyle  lipgloss.Style
	highlightDel lipgloss.Style
	highlightIns lipgloss.Style
}

func newRenderer(noColor bool, lexer string) *renderer {
	renderer := &renderer{color: !noColor, lexer: lexer}
	renderer.removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	renderer.addedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379"))
	renderer.contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370"))
	renderer.gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370")).Width(5).Align(lipgloss.Right)
	renderer.highlightDel = lipgloss.NewStyle().Background(lipgloss.Color("#5c2a2e")).Foreground(lipgloss.Color("#e06c75"))
	renderer.highlightIns = lipgloss.NewStyle().Background(lipgloss.Color("#2d4a30")).Foreground(lipgloss.Color("#98c379"))
	return renderer
}

// render prints vm as a two-pane diff. Each row prints old and new side
// by side; the row's own inline highlights (if any) are applied to that
// row's line text, which is then prefixed with the separately styled
// gutter and marker, mirroring how InlineHighlight is scoped to a single
// row (see types.go).
func (r *renderer) render(w *os.File, vm *diffview.ViewModel) {
	highlightsByRow := make(map[uint32][]diffview.InlineHighlight)
	for _, h := range vm.Highlights {
		highlightsByRow[h.Row] = append(highlightsByRow[h.Row], h)
	}

	for i, line := range vm.Lines {
		left := r.renderSide(vm.OldLines, line.Left, highlightsByRow[uint32(i)], true)
		right := r.renderSide(vm.NewLines, line.Right, highlightsByRow[uint32(i)], false)
		fmt.Fprintf(w, "%s  %s\n", left, right)
	}
}

func (r *renderer) renderSide(lines []string, side diffview.SideInfo, highlights []diffview.InlineHighlight, isLeft bool) string {
	gutter := "     "
	if side.Kind != diffview.Blank {
		gutter = r.style(r.gutterStyle, fmt.Sprintf("%5d", side.LineNo))
	}

	var marker, text string
	switch side.Kind {
	case diffview.Blank:
		return gutter + " "
	case diffview.Removed:
		marker, text = "-", r.applyHighlights(lines[side.LineNo-1], highlights, isLeft, r.highlightDel)
		return gutter + " " + r.style(r.removedStyle, marker) + " " + text
	case diffview.Added:
		marker, text = "+", r.applyHighlights(lines[side.LineNo-1], highlights, isLeft, r.highlightIns)
		return gutter + " " + r.style(r.addedStyle, marker) + " " + text
	default: // Context
		marker, text = " ", r.style(r.contextStyle, r.highlightSyntax(lines[side.LineNo-1]))
		return gutter + " " + marker + " " + text
	}
}

// applyHighlights wraps each of this row's byte ranges on the requested
// side with mark, leaving the rest of the line as plain text. A line with
// no ranges on that side is syntax-highlighted instead.
func (r *renderer) applyHighlights(line string, highlights []diffview.InlineHighlight, isLeft bool, mark lipgloss.Style) string {
	var spans []diffview.InlineHighlight
	for _, h := range highlights {
		if h.IsLeft == isLeft {
			spans = append(spans, h)
		}
	}
	if len(spans) == 0 {
		return r.highlightSyntax(line)
	}

	var b strings.Builder
	pos := uint32(0)
	for _, h := range spans {
		if h.Start > pos {
			b.WriteString(line[pos:h.Start])
		}
		b.WriteString(r.style(mark, line[h.Start:h.End]))
		pos = h.End
	}
	if int(pos) < len(line) {
		b.WriteString(line[pos:])
	}
	return b.String()
}

// highlightSyntax applies chroma syntax coloring to line when a lexer
// was resolved for the diffed file and coloring is enabled; otherwise it
// returns line unchanged. Each token is rendered with the lipgloss style
// tokenStyle assigns its chroma.TokenType.
func (r *renderer) highlightSyntax(line string) string {
	if !r.color || r.lexer == "" || line == "" {
		return line
	}
	lexer := lexers.Get(r.lexer)
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var b strings.Builder
	for tok := iterator(); tok != chroma.EOF; tok = iterator() {
		b.WriteString(tokenStyle(tok.Type).Render(tok.Value))
	}
	return b.String()
}

// tokenStyle returns the lipgloss style for a chroma token type, loosely
// based on the One Dark theme. Grounded on
// fwojciec-diffstory/chroma/tokenizer.go's tokenStyle categorization.
func tokenStyle(tt chroma.TokenType) lipgloss.Style {
	switch tt {
	case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
		chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved,
		chroma.KeywordType:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#c678dd")).Bold(true)
	case chroma.Comment, chroma.CommentHashbang, chroma.CommentMultiline,
		chroma.CommentPreproc, chroma.CommentPreprocFile, chroma.CommentSingle,
		chroma.CommentSpecial:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#5c6370"))
	case chroma.String, chroma.StringAffix, chroma.StringBacktick, chroma.StringChar,
		chroma.StringDelimiter, chroma.StringDoc, chroma.StringDouble,
		chroma.StringEscape, chroma.StringHeredoc, chroma.StringInterpol,
		chroma.StringOther, chroma.StringRegex, chroma.StringSingle,
		chroma.StringSymbol:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379"))
	case chroma.Number, chroma.NumberBin, chroma.NumberFloat, chroma.NumberHex,
		chroma.NumberInteger, chroma.NumberIntegerLong, chroma.NumberOct:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#d19a66"))
	case chroma.Operator, chroma.OperatorWord:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2"))
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#e5c07b"))
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef"))
	case chroma.Name, chroma.NameAttribute, chroma.NameClass, chroma.NameConstant,
		chroma.NameDecorator, chroma.NameEntity, chroma.NameException,
		chroma.NameLabel, chroma.NameNamespace, chroma.NameOther,
		chroma.NameProperty, chroma.NameTag, chroma.NameVariable,
		chroma.NameVariableAnonymous, chroma.NameVariableClass,
		chroma.NameVariableGlobal, chroma.NameVariableInstance,
		chroma.NameVariableMagic:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75"))
	default:
		return lipgloss.NewStyle()
	}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// printCrossCheck runs sergi/go-diff over the same two texts and prints a
// short comparison of op/change-region counts against diffview's own
// hunk count, in the spirit of the teacher's cmd/compare tool.
func printCrossCheck(w *os.File, oldText, newText string) {
	result := diffview.DiffLines(oldText, newText, diffview.DefaultContext)

	dmp := godiff.New()
	diffs := dmp.DiffMain(oldText, newText, true)
	dmp.DiffCleanupSemantic(diffs)

	goDiffRegions := 0
	inChange := false
	for _, d := range diffs {
		if d.Type == godiff.DiffEqual {
			inChange = false
			continue
		}
		if !inChange {
			goDiffRegions++
			inChange = true
		}
	}

	fmt.Fprintf(w, "\n--- cross-check (github.com/sergi/go-diff) ---\n")
	fmt.Fprintf(w, "diffview hunks:        %d\n", len(result.Hunks))
	fmt.Fprintf(w, "go-diff change regions: %d\n", goDiffRegions)
}
