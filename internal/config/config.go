package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned for configuration values that fail validation.
var ErrInvalidConfig = errors.New("polarity: invalid configuration")

const (
	ModeDirected   = "directed"
	ModeUndirected = "undirected"
)

type PropagationConfig struct {
	Mode string `toml:"mode" validate:"oneof=directed undirected"`
}

type InputConfig struct {
	Encoding            string `toml:"encoding"`
	IgnoreSelfRelations bool   `toml:"ignore_self_relations"`
	PartOfSpeech        string `toml:"part_of_speech" validate:"omitempty,oneof=all noun verb adjective adverb"`
}

type OutputConfig struct {
	Path      string `toml:"path"`
	Encoding  string `toml:"encoding"`
	Header    bool   `toml:"header"`
	Separator string `toml:"separator" validate:"len=1"`
	CRLF      bool   `toml:"crlf"`
}

type MemgraphConfig struct {
	URI       string `toml:"uri" validate:"required"`
	User      string `toml:"user"`
	Password  string `toml:"password"`
	BatchSize int    `toml:"batch_size" validate:"min=1"`
}

type ServerConfig struct {
	Port string `toml:"port" validate:"required,numeric"`
}

type Config struct {
	Propagation PropagationConfig `toml:"propagation"`
	Input       InputConfig       `toml:"input"`
	Output      OutputConfig      `toml:"output"`
	Memgraph    MemgraphConfig    `toml:"memgraph"`
	Server      ServerConfig      `toml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Propagation: PropagationConfig{Mode: ModeUndirected},
		Input:       InputConfig{IgnoreSelfRelations: true, PartOfSpeech: "all"},
		Output:      OutputConfig{Header: true, Separator: ","},
		Memgraph:    MemgraphConfig{URI: "bolt://localhost:7687", BatchSize: 500},
		Server:      ServerConfig{Port: "8080"},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration values with environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("POLARITY_MODE"); v != "" {
		c.Propagation.Mode = v
	}
	if v := os.Getenv("POLARITY_ENCODING"); v != "" {
		c.Input.Encoding = v
		c.Output.Encoding = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("MEMGRAPH_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Memgraph.BatchSize = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Directed reports whether the configured mode is the directed one.
func (c *Config) Directed() bool {
	return c.Propagation.Mode == ModeDirected
}

// Comma returns the output separator as a rune.
func (c *Config) Comma() rune {
	for _, r := range c.Output.Separator {
		return r
	}
	return ','
}
