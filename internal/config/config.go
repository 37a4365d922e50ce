package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/binctl/internal/bytebuf"
)

// Config holds binctl settings loaded from TOML.
type Config struct {
	Format        bytebuf.HexFormat
	CaptureStacks bool
	// Fill is the byte used by `binctl fill` when none is given.
	Fill byte
}

type fileConfig struct {
	OneSpaceEvery  int             `toml:"one_space_every"`
	TwoSpacesEvery int             `toml:"two_spaces_every"`
	NewlineEvery   int             `toml:"newline_every"`
	LineIndent     int             `toml:"line_indent"`
	Uppercase      bool            `toml:"uppercase"`
	CaptureStacks  bool            `toml:"capture_stacks"`
	Fill           *bytebuf.Buffer `toml:"fill"`
}

func Default() Config {
	return Config{Format: bytebuf.DefaultHexFormat()}
}

// Load overlays the keys defined in the file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("one_space_every") {
		cfg.Format.OneSpaceEvery = raw.OneSpaceEvery
	}
	if meta.IsDefined("two_spaces_every") {
		cfg.Format.TwoSpacesEvery = raw.TwoSpacesEvery
	}
	if meta.IsDefined("newline_every") {
		cfg.Format.NewlineEvery = raw.NewlineEvery
	}
	if meta.IsDefined("line_indent") {
		cfg.Format.LineIndent = raw.LineIndent
	}
	if meta.IsDefined("uppercase") {
		cfg.Format.Uppercase = raw.Uppercase
	}
	if meta.IsDefined("capture_stacks") {
		cfg.CaptureStacks = raw.CaptureStacks
	}
	if meta.IsDefined("fill") {
		if raw.Fill.Len() != 1 {
			return Config{}, fmt.Errorf("config invalid (%s): fill must be one byte, got %d", path, raw.Fill.Len())
		}
		cfg.Fill, _ = raw.Fill.At(0)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	return cfg.Format.Validate()
}

// Encode writes cfg as TOML using the same keys Load reads.
func Encode(w io.Writer, cfg Config) error {
	f := cfg.Format
	return toml.NewEncoder(w).Encode(fileConfig{
		OneSpaceEvery:  f.OneSpaceEvery,
		TwoSpacesEvery: f.TwoSpacesEvery,
		NewlineEvery:   f.NewlineEvery,
		LineIndent:     f.LineIndent,
		Uppercase:      f.Uppercase,
		CaptureStacks:  cfg.CaptureStacks,
		Fill:           bytebuf.New(1, cfg.Fill),
	})
}
