package numerics

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	if os.Getenv("NUMERICS_CONFIG") != "" {
		t.Skip("NUMERICS_CONFIG is set, defaults not in effect")
	}
	conf := numConfig()
	if conf.outputDir != "." {
		t.Fatalf("default output dir %q", conf.outputDir)
	}
	if conf.quadLimit != 50 {
		t.Fatalf("default quad limit %d", conf.quadLimit)
	}
	if conf.ivpMaxIter != 10000 {
		t.Fatalf("default ivp iteration cap %d", conf.ivpMaxIter)
	}
	if conf.verbose {
		t.Fatal("verbose should default to off")
	}
}

func TestQuadConfigFinalized(t *testing.T) {
	if os.Getenv("NUMERICS_CONFIG") != "" {
		t.Skip("NUMERICS_CONFIG is set, defaults not in effect")
	}
	cfg := QuadConfig{}.finalized()
	if cfg.EpsAbs != 1.49e-8 || cfg.EpsRel != 1.49e-8 || cfg.Limit != 50 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	cfg = QuadConfig{EpsAbs: 1e-3, Limit: 7}.finalized()
	if cfg.EpsAbs != 1e-3 || cfg.Limit != 7 {
		t.Fatalf("explicit fields must survive finalization, got %+v", cfg)
	}
}
