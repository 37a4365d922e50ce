package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/binctl/internal/bytebuf"
	"github.com/spf13/cobra"
)

// formatFlags override the configured hex format when set on the command line.
type formatFlags struct {
	one, two, newline, indent int
	lower                     bool
}

func addFormatFlags(cmd *cobra.Command, f *formatFlags) {
	cmd.Flags().IntVar(&f.one, "one", 1, "Insert one space every N bytes (0 disables)")
	cmd.Flags().IntVar(&f.two, "two", 0, "Insert two spaces every N bytes (0 disables)")
	cmd.Flags().IntVar(&f.newline, "newline", 0, "Start a new line every N bytes (0 disables)")
	cmd.Flags().IntVar(&f.indent, "indent", 0, "Indent every line by N spaces")
	cmd.Flags().BoolVar(&f.lower, "lower", false, "Use lowercase hex digits")
}

func (f *formatFlags) resolve(cmd *cobra.Command, base bytebuf.HexFormat) (bytebuf.HexFormat, error) {
	out := base
	if cmd.Flags().Changed("one") {
		out.OneSpaceEvery = f.one
	}
	if cmd.Flags().Changed("two") {
		out.TwoSpacesEvery = f.two
	}
	if cmd.Flags().Changed("newline") {
		out.NewlineEvery = f.newline
	}
	if cmd.Flags().Changed("indent") {
		out.LineIndent = f.indent
	}
	if cmd.Flags().Changed("lower") {
		out.Uppercase = !f.lower
	}
	if err := out.Validate(); err != nil {
		return bytebuf.HexFormat{}, fmt.Errorf("format flags: %w", err)
	}
	return out, nil
}

// printer renders buffers for one command invocation.
type printer struct {
	opts  *rootOptions
	flags formatFlags
}

func (p *printer) print(cmd *cobra.Command, b *bytebuf.Buffer) error {
	f, err := p.flags.resolve(cmd, p.opts.cfg.Format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), b.Hex(f))
	return nil
}

// parseHexArg joins args with spaces so both "01 02" and 01 02 parse alike.
func parseHexArg(args ...string) (*bytebuf.Buffer, error) {
	b, err := bytebuf.FromHex(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", strings.Join(args, " "), err)
	}
	return b, nil
}

func parseIntArg(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}
