package config

import (
	"fmt"
	"os"
)

func Template() string {
	return template
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# hex rendering; 0 disables a separator
one_space_every = 1
two_spaces_every = 0
newline_every = 0
line_indent = 0
uppercase = true

# record call stacks on failures
capture_stacks = false

# default byte for "binctl fill", as hex
fill = "00"
`
