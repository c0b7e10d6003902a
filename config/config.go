// Package config loads the build-time constants spec.md §6 calls out
// as externally supplied: task/stack limits, tick timing, and the
// is-alive feature toggle. A real board fixes these at compile time;
// this module reads them once at process start via viper so the
// simulator and CLI demo can vary them without a rebuild.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config mirrors spec.md §6's configuration constants.
type Config struct {
	MaxUserTasks int // excludes the mandatory idle task
	StackWords   int // per-task stack size, in machine words

	TickPeriodUS uint32
	CPUHz        uint32

	IsAliveEnabled     bool
	IsAlivePort        string
	IsAlivePin         uint8
	IsAlivePeriodTicks uint32 // sub-multiple of the tick; heartbeat fires every N ticks
}

// Default returns the configuration used by the CLI demo and by tests
// that don't care about the exact numbers.
func Default() Config {
	return Config{
		MaxUserTasks:       8,
		StackWords:         64,
		TickPeriodUS:       1000,
		CPUHz:              16_000_000,
		IsAliveEnabled:     true,
		IsAlivePort:        "GPIOC",
		IsAlivePin:         13,
		IsAlivePeriodTicks: 500,
	}
}

// Load reads configuration from environment variables prefixed
// MINIRTOS_ and, if present, a config file named by configPath,
// falling back to Default() for anything unset.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MINIRTOS")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("maxusertasks", d.MaxUserTasks)
	v.SetDefault("stackwords", d.StackWords)
	v.SetDefault("tickperiodus", d.TickPeriodUS)
	v.SetDefault("cpuhz", d.CPUHz)
	v.SetDefault("isaliveenabled", d.IsAliveEnabled)
	v.SetDefault("isaliveport", d.IsAlivePort)
	v.SetDefault("isalivepin", d.IsAlivePin)
	v.SetDefault("isaliveperiodticks", d.IsAlivePeriodTicks)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	return Config{
		MaxUserTasks:       v.GetInt("maxusertasks"),
		StackWords:         v.GetInt("stackwords"),
		TickPeriodUS:       uint32(v.GetUint("tickperiodus")),
		CPUHz:              uint32(v.GetUint("cpuhz")),
		IsAliveEnabled:     v.GetBool("isaliveenabled"),
		IsAlivePort:        v.GetString("isaliveport"),
		IsAlivePin:         uint8(v.GetUint("isalivepin")),
		IsAlivePeriodTicks: uint32(v.GetUint("isaliveperiodticks")),
	}, nil
}
