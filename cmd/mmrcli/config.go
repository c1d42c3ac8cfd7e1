package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

// config is read from ./mmrcli.toml if present, an optional TOML file for
// operator-tunable defaults. Flags always win over the file.
type config struct {
	DBPath   string `toml:"db_path"`
	Capacity uint64 `toml:"capacity"`
}

func loadConfig(dbPathFromFlagDefault, capacityFromFlagDefault bool) {
	data, err := os.ReadFile("mmrcli.toml")
	if err != nil {
		return
	}
	var c config
	if err := toml.Unmarshal(data, &c); err != nil {
		logger.Warn("ignoring malformed mmrcli.toml", zap.Error(err))
		return
	}
	if dbPathFromFlagDefault && c.DBPath != "" {
		dbPath = c.DBPath
	}
	if capacityFromFlagDefault && c.Capacity != 0 {
		capacity = c.Capacity
	}
}
