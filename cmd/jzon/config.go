package main

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	jzon "github.com/Zguy/Jzon"
)

/*
formatConfig is the YAML form of a writer format. Unset fields keep the
value of the preset:
	preset: spaced
	indent_size: 4
*/
type formatConfig struct {
	Preset     string `yaml:"preset"`
	Newline    *bool  `yaml:"newline"`
	Spacing    *bool  `yaml:"spacing"`
	UseTabs    *bool  `yaml:"use_tabs"`
	IndentSize *uint  `yaml:"indent_size"`
}

var presets = map[string]jzon.Format{
	"":         jzon.StandardFormat,
	"standard": jzon.StandardFormat,
	"spaced":   jzon.SpacedFormat,
	"compact":  jzon.CompactFormat,
}

func (c formatConfig) format() (jzon.Format, error) {
	f, ok := presets[c.Preset]
	if !ok {
		return jzon.Format{}, errors.Errorf("unknown preset %q", c.Preset)
	}
	if c.Newline != nil {
		f.Newline = *c.Newline
	}
	if c.Spacing != nil {
		f.Spacing = *c.Spacing
	}
	if c.UseTabs != nil {
		f.UseTabs = *c.UseTabs
	}
	if c.IndentSize != nil {
		f.IndentSize = *c.IndentSize
	}
	return f, nil
}

func loadFormat(fs afero.Fs, name string) (jzon.Format, error) {
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		return jzon.Format{}, errors.Wrapf(err, "failed to read format config %s", name)
	}

	var cfg formatConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return jzon.Format{}, errors.Wrapf(err, "failed to decode format config %s", name)
	}

	f, err := cfg.format()
	if err != nil {
		return jzon.Format{}, errors.Wrap(err, name)
	}
	return f, nil
}
