// Package help renders usage text for a cmdtree command tree. It relies only on the
// structural accessors of Command, Option and Operand and never parses anything.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/cmdtree"
	"github.com/napalu/cmdtree/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PrettyPrintConfig controls how the command tree is drawn
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the direct children of the printed command
	NewCommandPrefix string
	// DefaultPrefix precedes nested commands which have children of their own
	DefaultPrefix string
	// TerminalPrefix precedes nested commands without children
	TerminalPrefix string
	// InnerLevelBindPrefix is repeated once per nesting level
	InnerLevelBindPrefix string
}

// DefaultPrettyPrintConfig draws
//
//	+ remote
//	│─ origin
//	└─ ** prune
var DefaultPrettyPrintConfig = PrettyPrintConfig{
	NewCommandPrefix:     "+ ",
	DefaultPrefix:        "│─ ",
	TerminalPrefix:       "└─ ",
	InnerLevelBindPrefix: "** ",
}

const (
	indent       = "  "
	columnGap    = 2
	minColumn    = 10
	minTextWidth = 20
)

// Printer writes help for a command
type Printer struct {
	renderer Renderer
	pretty   PrettyPrintConfig
	terminal util.Terminal
	width    int
	color    *bool
	title    cases.Caser
}

// ConfigurePrinterFunc configures a Printer
type ConfigurePrinterFunc func(*Printer)

// NewPrinter creates a Printer using DefaultRenderer and DefaultPrettyPrintConfig.
// Width and colour are taken from the destination writer unless configured.
func NewPrinter(configs ...ConfigurePrinterFunc) *Printer {
	p := &Printer{
		renderer: NewRenderer(),
		pretty:   DefaultPrettyPrintConfig,
		terminal: util.SystemTerminal,
		title:    cases.Title(language.English),
	}
	for _, config := range configs {
		config(p)
	}

	return p
}

// WithRenderer replaces the Renderer
func WithRenderer(r Renderer) ConfigurePrinterFunc {
	return func(p *Printer) {
		p.renderer = r
	}
}

// WithPrettyPrintConfig replaces the command tree decoration
func WithPrettyPrintConfig(config PrettyPrintConfig) ConfigurePrinterFunc {
	return func(p *Printer) {
		p.pretty = config
	}
}

// WithWidth fixes the output width instead of querying the terminal
func WithWidth(width int) ConfigurePrinterFunc {
	return func(p *Printer) {
		p.width = width
	}
}

// WithColor forces colour on or off
func WithColor(enabled bool) ConfigurePrinterFunc {
	return func(p *Printer) {
		p.color = &enabled
	}
}

// WithTerminal sets the terminal queried for width and colour support
func WithTerminal(t util.Terminal) ConfigurePrinterFunc {
	return func(p *Printer) {
		p.terminal = t
	}
}

// Print writes the synopsis, description, options, operands, child commands and
// example of c to w. Sections without content are omitted.
func (p *Printer) Print(w io.Writer, c *cmdtree.Command) error {
	width := p.width
	if width <= 0 {
		width = util.TerminalWidth(w, p.terminal)
	}

	heading := color.New(color.Bold)
	colorize := util.IsTerminal(w, p.terminal) && !color.NoColor
	if p.color != nil {
		colorize = *p.color
	}
	if colorize {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	b := &strings.Builder{}
	section := func(name string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(heading.Sprint(p.title.String(name)+":") + "\n")
	}

	b.WriteString(heading.Sprint(p.title.String("usage")+":") + " " + p.renderer.CommandUsage(c) + "\n")

	if text := description(c); text != "" {
		b.WriteString("\n")
		for _, line := range Wrap(text, width) {
			b.WriteString(line + "\n")
		}
	}

	if c.HasOptions() {
		section("options")
		rows := make([][2]string, 0, len(c.Options()))
		for _, o := range c.Options() {
			rows = append(rows, [2]string{p.renderer.OptionUsage(o), p.renderer.OptionDescription(o)})
		}
		writeColumns(b, rows, width)
	}

	if c.HasOperands() {
		section("operands")
		rows := make([][2]string, 0, len(c.Operands()))
		for _, o := range c.Operands() {
			rows = append(rows, [2]string{p.renderer.OperandUsage(o), p.renderer.OperandDescription(o)})
		}
		writeColumns(b, rows, width)
	}

	if c.HasCommands() {
		section("commands")
		var rows [][2]string
		for _, child := range c.Commands() {
			Visit(child, func(cmd *cmdtree.Command, level int) bool {
				rows = append(rows, [2]string{p.commandPrefix(cmd, level) + p.renderer.CommandName(cmd), cmd.Help()})
				return true
			}, 0)
		}
		writeColumns(b, rows, width)
	}

	if example := c.Example(); example != "" {
		section("example")
		for _, line := range strings.Split(example, "\n") {
			b.WriteString(indent + line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (p *Printer) commandPrefix(cmd *cmdtree.Command, level int) string {
	start := p.pretty.DefaultPrefix
	switch {
	case level == 0:
		start = p.pretty.NewCommandPrefix
	case !cmd.HasCommands():
		start = p.pretty.TerminalPrefix
	}
	if level > 1 {
		start += strings.Repeat(p.pretty.InnerLevelBindPrefix, level-1)
	}

	return start
}

// Visit walks cmd and its descendants depth-first. Returning false from visitor
// skips the children of the visited command.
func Visit(cmd *cmdtree.Command, visitor func(cmd *cmdtree.Command, level int) bool, level int) {
	if visitor != nil && !visitor(cmd, level) {
		return
	}

	for _, child := range cmd.Commands() {
		Visit(child, visitor, level+1)
	}
}

func description(c *cmdtree.Command) string {
	if d := c.Description(); d != "" {
		return d
	}

	return c.Help()
}

// writeColumns writes two-column rows, wrapping the right column to the remaining width
func writeColumns(b *strings.Builder, rows [][2]string, width int) {
	column := 0
	for _, row := range rows {
		column = util.Max(column, len([]rune(row[0])))
	}
	column = util.Clamp(column, minColumn, util.Max(minColumn, width/2))
	textWidth := util.Max(minTextWidth, width-len(indent)-column-columnGap)
	pad := strings.Repeat(" ", len(indent)+column+columnGap)

	for _, row := range rows {
		left := indent + row[0]
		lines := Wrap(row[1], textWidth)
		if len(lines) == 0 {
			b.WriteString(left + "\n")
			continue
		}

		if len([]rune(row[0])) > column {
			b.WriteString(left + "\n" + pad + lines[0] + "\n")
		} else {
			b.WriteString(fmt.Sprintf("%-*s%s\n", len(pad), left, lines[0]))
		}
		for _, line := range lines[1:] {
			b.WriteString(pad + line + "\n")
		}
	}
}

// Wrap breaks text into lines of at most width runes at word boundaries. Words
// longer than width are kept whole on their own line.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
