package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/ChrisGVE/numerics"
	"github.com/spf13/viper"
)

// This code effectively only reads the scenario file and solves the problem.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "solver scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	problem := viper.GetString("problem.name")
	t0 := viper.GetFloat64("problem.start")
	tf := viper.GetFloat64("problem.end")
	y0 := float64Slice(viper.GetStringSlice("problem.y0"))
	if verbose {
		log.Printf("[conf] problem: %s over [%g, %g], y0=%v\n", problem, t0, tf, y0)
	}

	f, ok := problems[problem]
	if !ok {
		log.Fatalf("unknown problem %q", problem)
	}

	method, err := numerics.MethodFromString(viper.GetString("solver.method"))
	if err != nil {
		log.Fatal(err)
	}
	cfg := numerics.IVPConfig{
		Method:  method,
		RTol:    viper.GetFloat64("solver.rtol"),
		ATol:    viper.GetFloat64("solver.atol"),
		MaxStep: viper.GetFloat64("solver.maxstep"),
		Export: numerics.ExportConfig{
			Filename:  viper.GetString("export.filename"),
			AsCSV:     viper.GetBool("export.csv"),
			Timestamp: viper.GetBool("export.timestamp"),
		},
	}

	res, err := numerics.SolveIVP(f, t0, tf, y0, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if !res.Success {
		log.Printf("[WARNING] %s", res.Message)
	}
	final := res.Y[len(res.Y)-1]
	fmt.Printf("%s: t=%g y=%v (%d evaluations, %d steps)\n", problem, res.T[len(res.T)-1], final, res.NFev, len(res.T)-1)
}

// problems names the built-in right-hand sides a scenario may select.
var problems = map[string]numerics.Derivative{
	"exponential-decay": func(t float64, y []float64) []float64 {
		dy := make([]float64, len(y))
		for i, v := range y {
			dy[i] = -v
		}
		return dy
	},
	"harmonic-oscillator": func(t float64, y []float64) []float64 {
		return []float64{y[1], -y[0]}
	},
	"van-der-pol": func(t float64, y []float64) []float64 {
		const mu = 1.0
		return []float64{y[1], mu*(1-y[0]*y[0])*y[1] - y[0]}
	},
	"pendulum": func(t float64, y []float64) []float64 {
		return []float64{y[1], -9.81 * math.Sin(y[0])}
	},
}

func float64Slice(in []string) []float64 {
	out := make([]float64, len(in))
	for i, s := range in {
		if _, err := fmt.Sscanf(s, "%g", &out[i]); err != nil {
			log.Fatalf("cannot parse initial state component %q", s)
		}
	}
	return out
}
