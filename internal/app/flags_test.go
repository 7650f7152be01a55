package app

import (
	"flag"
	"testing"
)

func TestConfigBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Pattern != "A" || cfg.TPS != 30 || cfg.Seed != 42 || cfg.Level != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	fs := flag.NewFlagSet("unfold", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-pattern", "d", "-level", "3", "-mute", "-workers", "2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Pattern != "d" || cfg.Level != 3 || !cfg.Mute || cfg.Workers != 2 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}
