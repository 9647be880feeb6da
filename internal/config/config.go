// Package config loads the calculator's HCL configuration.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-equity/internal/bench"
)

// Config is the complete configuration file.
type Config struct {
	Bench  *BenchConfig  `hcl:"bench,block"`
	Server *ServerConfig `hcl:"server,block"`
}

// BenchConfig overrides the benchmark defaults. The signature only matches
// the published one for the reference spot list, game count and RNG stream,
// so overriding the spots usually means overriding the signature too.
type BenchConfig struct {
	Games     int      `hcl:"games,optional"`
	Threads   int      `hcl:"threads,optional"`
	Signature uint64   `hcl:"signature,optional"`
	Spots     []string `hcl:"spots,optional"`
}

// ServerConfig configures the equity service.
type ServerConfig struct {
	Address    string `hcl:"address,optional"`
	MaxGames   int    `hcl:"max_games,optional"`
	MaxThreads int    `hcl:"max_threads,optional"`
}

// Default returns the built-in configuration: the reference benchmark
// constants and a local server address.
func Default() *Config {
	return &Config{
		Bench: &BenchConfig{
			Games:     bench.GamesPerSpot,
			Threads:   1,
			Signature: bench.GoodSignature,
			Spots:     bench.DefaultSpots,
		},
		Server: &ServerConfig{
			Address:    "localhost:8087",
			MaxGames:   10_000_000,
			MaxThreads: 32,
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults;
// fields left out of a present file are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	def := Default()
	if cfg.Bench == nil {
		cfg.Bench = def.Bench
	} else {
		if cfg.Bench.Games <= 0 {
			cfg.Bench.Games = def.Bench.Games
		}
		if cfg.Bench.Threads <= 0 {
			cfg.Bench.Threads = def.Bench.Threads
		}
		if cfg.Bench.Signature == 0 {
			cfg.Bench.Signature = def.Bench.Signature
		}
		if len(cfg.Bench.Spots) == 0 {
			cfg.Bench.Spots = def.Bench.Spots
		}
	}
	if cfg.Server == nil {
		cfg.Server = def.Server
	} else {
		if cfg.Server.Address == "" {
			cfg.Server.Address = def.Server.Address
		}
		if cfg.Server.MaxGames <= 0 {
			cfg.Server.MaxGames = def.Server.MaxGames
		}
		if cfg.Server.MaxThreads <= 0 {
			cfg.Server.MaxThreads = def.Server.MaxThreads
		}
	}
	return &cfg, nil
}
