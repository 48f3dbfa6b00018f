package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/glyphterm/asset"
	"github.com/lixenwraith/glyphterm/parameter"
)

// Config is the construction-time surface of a host: fonts to load and terminals to build
type Config struct {
	Fonts     []FontConfig     `toml:"font"`
	Terminals []TerminalConfig `toml:"terminal"`
}

// FontConfig registers an image atlas under an id
type FontConfig struct {
	ID   string `toml:"id"`
	Path string `toml:"path"`
	Grid [2]int `toml:"grid"`
	// Glyphs is the atlas ordering, code page 437 when empty
	Glyphs string `toml:"glyphs"`
}

// TerminalConfig describes one terminal
type TerminalConfig struct {
	Name             string       `toml:"name"`
	Size             [2]int       `toml:"size"`
	Position         [2]float32   `toml:"position"`
	Depth            float32      `toml:"depth"`
	Pivot            string       `toml:"pivot"`
	Scaling          string       `toml:"scaling"`
	Border           string       `toml:"border"`
	BorderFg         string       `toml:"border_fg"`
	BorderBg         string       `toml:"border_bg"`
	ClearGlyph       string       `toml:"clear_glyph"`
	Fg               string       `toml:"fg"`
	Bg               string       `toml:"bg"`
	BgClipColor      string       `toml:"bg_clip_color"`
	Font             string       `toml:"font"`
	ClearAfterRender bool         `toml:"clear_after_render"`
	Text             []TextConfig `toml:"text"`
}

// TextConfig is a string written when the terminal is built
type TextConfig struct {
	At    [2]int `toml:"at"`
	Pivot string `toml:"pivot"`
	Text  string `toml:"text"`
	Fg    string `toml:"fg"`
	Bg    string `toml:"bg"`
}

// Parse decodes TOML, rejecting unknown keys, and fills unset fields with defaults
func Parse(data string) (*Config, error) {
	var c Config
	meta, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode config: unknown keys %v", undecoded)
	}
	c.ApplyDefaults()
	return &c, nil
}

// Load reads a TOML file, see Parse
func Load(path string) (*Config, error) {
	var c Config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	c.ApplyDefaults()
	return &c, nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	c, err := Parse(asset.DefaultConfig)
	if err != nil {
		panic(fmt.Sprintf("config: built-in configuration invalid: %v", err))
	}
	return c
}

// ApplyDefaults fills every unset terminal field from parameter defaults
func (c *Config) ApplyDefaults() {
	for i := range c.Terminals {
		t := &c.Terminals[i]
		if t.Size == [2]int{} {
			t.Size = [2]int{parameter.DefaultTerminalWidth, parameter.DefaultTerminalHeight}
		}
		setDefault(&t.Pivot, parameter.DefaultPivot)
		setDefault(&t.Scaling, parameter.DefaultScaling)
		setDefault(&t.Border, parameter.DefaultBorder)
		setDefault(&t.BorderFg, parameter.DefaultFg)
		setDefault(&t.BorderBg, parameter.DefaultBg)
		setDefault(&t.ClearGlyph, string(rune(parameter.DefaultClearGlyph)))
		setDefault(&t.Fg, parameter.DefaultFg)
		setDefault(&t.Bg, parameter.DefaultBg)
		setDefault(&t.BgClipColor, parameter.DefaultBgClipColor)
		setDefault(&t.Font, parameter.DefaultFont)
		for j := range t.Text {
			setDefault(&t.Text[j].Pivot, "bottom_left")
		}
	}
	for i := range c.Fonts {
		if c.Fonts[i].Grid == [2]int{} {
			c.Fonts[i].Grid = [2]int{parameter.AtlasColumns, parameter.AtlasRows}
		}
	}
}

func setDefault(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

// Validate reports every invalid field, not just the first
// A terminal whose border, clear glyph or text uses glyphs outside its font's atlas
// ordering is invalid, its mesh could never be built
func (c *Config) Validate() error {
	var errs []error
	fonts := c.fontGlyphs()
	for i, f := range c.Fonts {
		if f.ID == "" {
			errs = append(errs, fmt.Errorf("font[%d]: missing id", i))
		}
		if f.Path == "" {
			errs = append(errs, fmt.Errorf("font[%d] %q: missing path", i, f.ID))
		}
		if f.Grid[0] < 1 || f.Grid[1] < 1 {
			errs = append(errs, fmt.Errorf("font[%d] %q: invalid grid %v", i, f.ID, f.Grid))
		}
	}
	for i, t := range c.Terminals {
		r, err := t.Resolve()
		if err != nil {
			errs = append(errs, fmt.Errorf("terminal[%d] %q: %w", i, t.Name, err))
		}
		has, ok := fonts[t.Font]
		if !ok {
			errs = append(errs, fmt.Errorf("terminal[%d] %q: unknown font %q", i, t.Name, t.Font))
			continue
		}
		if err != nil {
			continue
		}
		if missing := r.missingGlyphs(has); len(missing) > 0 {
			errs = append(errs, fmt.Errorf("terminal[%d] %q: %w", i, t.Name, glyphError(t.Font, missing)))
		}
	}
	return errors.Join(errs...)
}
