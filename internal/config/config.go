// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
	"gopkg.in/yaml.v3"
)

// Config holds everything cmd/server needs to start.
type Config struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allowOrigins"`
	Search       Search   `yaml:"search"`
	WebSocket    Sockets  `yaml:"websocket"`
	Games        Games    `yaml:"games"`
}

// Games controls when abandoned games are dropped from memory.
type Games struct {
	IdleTimeout   time.Duration `yaml:"idleTimeout"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
}

// Search tunes the computer opponent.
type Search struct {
	Depth         int           `yaml:"depth"`
	MaxDepth      int           `yaml:"maxDepth"`
	ComputerDelay time.Duration `yaml:"computerDelay"`
	// ComputerColor is the side the engine plays in single-player games
	// that do not choose one.
	ComputerColor string `yaml:"computerColor"`
}

// Computer parses ComputerColor. Validate has already rejected bad values.
func (s Search) Computer() engine.Color {
	c, _ := engine.ParseColor(s.ComputerColor)
	return c
}

type Sockets struct {
	ReadBufferSize  int `yaml:"readBufferSize"`
	WriteBufferSize int `yaml:"writeBufferSize"`
}

// EnvPath names the variable consulted when no -config flag is given.
const EnvPath = "CHESSBOT_CONFIG"

var ErrInvalid = errors.New("invalid config")

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:         ":3000",
		AllowOrigins: []string{"http://localhost:5173"},
		Search: Search{
			Depth:         3,
			MaxDepth:      5,
			ComputerDelay: 500 * time.Millisecond,
			ComputerColor: "black",
		},
		WebSocket: Sockets{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Games: Games{
			IdleTimeout:   30 * time.Minute,
			SweepInterval: time.Minute,
		},
	}
}

// Load reads path on top of the defaults, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CHESSBOT_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("CHESSBOT_ALLOW_ORIGINS"); ok && v != "" {
		c.AllowOrigins = strings.Split(v, ",")
		for i := range c.AllowOrigins {
			c.AllowOrigins[i] = strings.TrimSpace(c.AllowOrigins[i])
		}
	}
	if v, ok := lookup("CHESSBOT_SEARCH_DEPTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CHESSBOT_SEARCH_DEPTH=%q", ErrInvalid, v)
		}
		c.Search.Depth = n
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty addr", ErrInvalid)
	case c.Search.MaxDepth < 1:
		return fmt.Errorf("%w: search.maxDepth must be at least 1", ErrInvalid)
	case c.Search.Depth < 1 || c.Search.Depth > c.Search.MaxDepth:
		return fmt.Errorf("%w: search.depth %d outside 1..%d", ErrInvalid, c.Search.Depth, c.Search.MaxDepth)
	case !validColor(c.Search.ComputerColor):
		return fmt.Errorf("%w: search.computerColor %q", ErrInvalid, c.Search.ComputerColor)
	case c.Search.ComputerDelay < 0:
		return fmt.Errorf("%w: negative search.computerDelay", ErrInvalid)
	case c.WebSocket.ReadBufferSize < 0 || c.WebSocket.WriteBufferSize < 0:
		return fmt.Errorf("%w: negative websocket buffer size", ErrInvalid)
	case c.Games.IdleTimeout <= 0 || c.Games.SweepInterval <= 0:
		return fmt.Errorf("%w: games.idleTimeout and games.sweepInterval must be positive", ErrInvalid)
	}
	return nil
}

// Origins joins AllowOrigins the way the CORS middleware expects.
func (c Config) Origins() string {
	return strings.Join(c.AllowOrigins, ",")
}

func validColor(s string) bool {
	_, ok := engine.ParseColor(s)
	return ok
}
