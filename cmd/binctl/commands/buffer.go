package commands

import (
	"fmt"

	"github.com/danmuck/binctl/internal/bytebuf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFmtCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   "fmt <hex>...",
		Short: "Reformat hex text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args...)
			if err != nil {
				return err
			}
			log.Debug().Int("len", b.Len()).Msg("fmt")
			return p.print(cmd, b)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newCounterCmd(opts *rootOptions, use, short string, step func(*bytebuf.Buffer) *bytebuf.Buffer) *cobra.Command {
	p := &printer{opts: opts}
	var times int
	cmd := &cobra.Command{
		Use:   use + " <hex>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args...)
			if err != nil {
				return err
			}
			if times < 0 {
				return fmt.Errorf("times must not be negative: %d", times)
			}
			for range times {
				step(b)
			}
			return p.print(cmd, b)
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 1, "Number of steps to apply")
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newBitwiseCmd(opts *rootOptions, use string, op func(a, b *bytebuf.Buffer) (*bytebuf.Buffer, error)) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   use + " <hex> <hex>",
		Short: "Combine two equal-length values with " + use,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseHexArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseHexArg(args[1])
			if err != nil {
				return err
			}
			out, err := op(a, b)
			if err != nil {
				return err
			}
			return p.print(cmd, out)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newConcatCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   "concat <hex>...",
		Short: "Concatenate values in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bytebuf.New(0, 0)
			for _, arg := range args {
				b, err := parseHexArg(arg)
				if err != nil {
					return err
				}
				out.Append(b)
			}
			return p.print(cmd, out)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newSliceCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   "slice <hex> <offset> <count>",
		Short: "Copy count bytes starting at offset",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args[0])
			if err != nil {
				return err
			}
			offset, err := parseIntArg("offset", args[1])
			if err != nil {
				return err
			}
			count, err := parseIntArg("count", args[2])
			if err != nil {
				return err
			}
			out, err := b.Slice(offset, count)
			if err != nil {
				return err
			}
			return p.print(cmd, out)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newEdgeCmd(opts *rootOptions, use string, take func(*bytebuf.Buffer, int) (*bytebuf.Buffer, error)) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   use + " <hex> <count>",
		Short: "Copy the " + use + " count bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args[0])
			if err != nil {
				return err
			}
			count, err := parseIntArg("count", args[1])
			if err != nil {
				return err
			}
			out, err := take(b, count)
			if err != nil {
				return err
			}
			return p.print(cmd, out)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newIntCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "int <hex>",
		Short: "Print a value as a big-endian unsigned integer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args...)
			if err != nil {
				return err
			}
			var v uint64
			switch bits {
			case 16:
				var u uint16
				u, err = b.U16()
				v = uint64(u)
			case 32:
				var u uint32
				u, err = b.U32()
				v = uint64(u)
			case 64:
				v, err = b.U64()
			default:
				return fmt.Errorf("unsupported width %d (want 16, 32 or 64)", bits)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 64, "Integer width: 16, 32 or 64")
	return cmd
}

func newBitCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	var set, reset bool
	cmd := &cobra.Command{
		Use:   "bit <hex> <index> <bit>",
		Short: "Read, set or reset one bit (0 is the least significant)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHexArg(args[0])
			if err != nil {
				return err
			}
			index, err := parseIntArg("index", args[1])
			if err != nil {
				return err
			}
			bitNum, err := parseIntArg("bit", args[2])
			if err != nil {
				return err
			}
			switch {
			case set && reset:
				return fmt.Errorf("--set and --reset are exclusive")
			case set || reset:
				if err := b.WriteBit(index, bitNum, set); err != nil {
					return err
				}
				return p.print(cmd, b)
			default:
				v, err := b.Bit(index, bitNum)
				if err != nil {
					return err
				}
				out := 0
				if v {
					out = 1
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&set, "set", false, "Set the bit and print the result")
	cmd.Flags().BoolVar(&reset, "reset", false, "Reset the bit and print the result")
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newRandomCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   "random <count>",
		Short: "Print count random bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseIntArg("count", args[0])
			if err != nil {
				return err
			}
			b, err := bytebuf.Random(count)
			if err != nil {
				return err
			}
			return p.print(cmd, b)
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}

func newFillCmd(opts *rootOptions) *cobra.Command {
	p := &printer{opts: opts}
	cmd := &cobra.Command{
		Use:   "fill <count> [byte]",
		Short: "Print count copies of one byte (default: config fill, else 00)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseIntArg("count", args[0])
			if err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("count must not be negative: %d", count)
			}
			value := opts.cfg.Fill
			if len(args) == 2 {
				v, err := parseHexArg(args[1])
				if err != nil {
					return err
				}
				if v.Len() != 1 {
					return fmt.Errorf("fill value must be one byte, got %d", v.Len())
				}
				value, _ = v.At(0)
			}
			return p.print(cmd, bytebuf.New(count, value))
		},
	}
	addFormatFlags(cmd, &p.flags)
	return cmd
}
