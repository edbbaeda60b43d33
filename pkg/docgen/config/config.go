// Package config loads chefdoc's optional project configuration file.
package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/model"
)

// DefaultFileName is the configuration file chefdoc looks for in the working directory.
const DefaultFileName = ".chefdoc.yaml"

// DefaultOutput is the output directory used when neither the configuration nor the command line names one.
const DefaultOutput = "doc"

// Config is the contents of a configuration file.
type Config struct {
	// Output is the directory pages are written to.
	Output string `yaml:"output,omitempty"`
	// Cookbooks lists the cookbook directories to document when none are given on the command line.
	Cookbooks []string `yaml:"cookbooks,omitempty"`
	// Kinds lists additional "parent:keyword:kind" registrations.
	Kinds []string `yaml:"kinds,omitempty"`
	// Width is the wrapping width used when printing diagnostics. Zero disables wrapping.
	Width uint `yaml:"width,omitempty"`
}

// Load reads the configuration at path. If path is empty, the default file is read if it exists.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "reading configuration")
	}
	return Parse(b)
}

// Parse decodes configuration from YAML.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return &c, nil
}

// OutputDir returns the configured output directory, or DefaultOutput.
func (c *Config) OutputDir() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}

// Registry returns the built-in registry extended with the configured kinds.
func (c *Config) Registry() (*model.Registry, error) {
	registry := model.NewRegistry()
	for _, tok := range c.Kinds {
		parent, keyword, kind, err := model.DecomposeRegistration(tok)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(parent, keyword, kind); err != nil {
			return nil, errors.Wrapf(err, "registering %q", tok)
		}
	}
	return registry, nil
}
