// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package outline

type Config struct {
	tabWidth int
	rootName string
}

type Option func(c *Config) error

// WithTabWidth sets the number of spaces that make up one indentation
// level. A tab always counts as one full level. The default is 4.
func WithTabWidth(width int) Option {
	return func(c *Config) error {
		if width < 1 {
			return &ErrParse{Msg: "tab width must be at least 1"}
		}
		c.tabWidth = width
		return nil
	}
}

// WithRootName sets the name of the synthetic root node that the
// top-level entries of the outline attach to.
func WithRootName(name string) Option {
	return func(c *Config) error {
		c.rootName = name
		return nil
	}
}
