// Package commands implements the binctl command tree.
package commands

import (
	"github.com/danmuck/binctl/internal/bytebuf"
	"github.com/danmuck/binctl/internal/config"
	"github.com/danmuck/binctl/internal/fault"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is injected at build time.
var Version = "dev"

type rootOptions struct {
	configPath    string
	captureStacks bool
	cfg           config.Config
}

// NewRootCmd builds the binctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "binctl",
		Short: "Inspect and transform binary values written as hex",
		Long: `binctl parses hex text such as "00 02 FF FF" into a byte buffer and applies
buffer operations to it: reformatting, slicing, bit access, bitwise combination,
big-endian integer views and counter increment/decrement.

Use "binctl [command] --help" for more information about a command.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				opts.cfg = cfg
				log.Debug().Str("path", opts.configPath).Msg("config loaded")
			}
			if cmd.Flags().Changed("capture-stacks") {
				opts.cfg.CaptureStacks = opts.captureStacks
			}
			fault.CaptureStacks(opts.cfg.CaptureStacks)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVar(&opts.captureStacks, "capture-stacks", false, "Record call stacks on failures")

	root.AddCommand(
		newFmtCmd(opts),
		newCounterCmd(opts, "inc", "Increment a big-endian value by one", (*bytebuf.Buffer).Increment),
		newCounterCmd(opts, "dec", "Decrement a big-endian value by one", (*bytebuf.Buffer).Decrement),
		newBitwiseCmd(opts, "xor", bytebuf.Xor),
		newBitwiseCmd(opts, "or", bytebuf.Or),
		newBitwiseCmd(opts, "and", bytebuf.And),
		newConcatCmd(opts),
		newSliceCmd(opts),
		newEdgeCmd(opts, "first", (*bytebuf.Buffer).First),
		newEdgeCmd(opts, "last", (*bytebuf.Buffer).Last),
		newIntCmd(),
		newBitCmd(opts),
		newRandomCmd(opts),
		newFillCmd(opts),
		newConfigCmd(opts),
	)
	return root
}
