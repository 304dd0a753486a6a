package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/wrapgen/errors"
)

const fileHeader = `# wrapgen configuration
# Relative paths are resolved against the directory of this file.
# Extra casts and tags are arrays of tables:
#
#   [[known_casts]]
#   type = "com.example.FancyText"
#   cast = "android.widget.TextView"
#
#   [[implicit_tags]]
#   tag = "CardView"
#   type = "androidx.cardview.widget.CardView"

`

// Marshal renders c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return buf.Bytes(), nil
}

// WriteDefault writes a starter configuration to path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it")
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
