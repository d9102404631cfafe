package config

import (
	"fmt"
	"os"
)

const decoderTemplate = `# arpscope decoder settings
mac_separator = ":"
byte_separator = ":"
log_level = "info"

# Names for hardware types missing from the built-in table.
# Built-in names cannot be overridden.
# [[hardware_types]]
# code = 32
# name = "InfiniBand"
`

func Template() string {
	return decoderTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(decoderTemplate), 0o600)
}
