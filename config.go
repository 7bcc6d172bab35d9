package numerics

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _numconfig{}
)

// _numconfig is a "hidden" struct, just use `numConfig`.
type _numconfig struct {
	outputDir  string
	verbose    bool
	quadLimit  int
	ivpMaxIter int
}

// numConfig returns the engine configuration. Unlike a host application, a
// library must work without any configuration file: when the NUMERICS_CONFIG
// environment variable is unset, built-in defaults apply. When set, it must
// point to a directory holding a readable conf.toml.
func numConfig() _numconfig {
	cfgOnce.Do(func() {
		config = _numconfig{outputDir: ".", quadLimit: 50, ivpMaxIter: 10000}
		confPath := os.Getenv("NUMERICS_CONFIG")
		if confPath == "" {
			return
		}
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if viper.IsSet("general.output_path") {
			config.outputDir = viper.GetString("general.output_path")
		}
		config.verbose = viper.GetBool("general.verbose")
		if viper.IsSet("quad.limit") {
			if l := viper.GetInt("quad.limit"); l > 0 {
				config.quadLimit = l
			}
		}
		if viper.IsSet("ivp.maxiter") {
			if m := viper.GetInt("ivp.maxiter"); m > 0 {
				config.ivpMaxIter = m
			}
		}
	})
	return config
}
