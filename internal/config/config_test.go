package config_test

import (
	"testing"

	"stayflow/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	if cfg.HTTPAddr != ":8080" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Property.Name != "Grand Hotel & Resort" || cfg.Property.TaxRate != 12.5 {
		t.Fatalf("property defaults = %+v", cfg.Property)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STAYFLOW_HTTP_ADDR", ":9090")
	t.Setenv("STAYFLOW_CURRENCY", "EUR")
	t.Setenv("STAYFLOW_TAX_RATE", "21")
	cfg := config.Load()
	if cfg.HTTPAddr != ":9090" || cfg.Property.Currency != "EUR" || cfg.Property.TaxRate != 21 {
		t.Fatalf("overrides = %+v", cfg)
	}
}

func TestLoadBadTaxRateFallsBack(t *testing.T) {
	t.Setenv("STAYFLOW_TAX_RATE", "not-a-number")
	if cfg := config.Load(); cfg.Property.TaxRate != 12.5 {
		t.Fatalf("tax rate = %v", cfg.Property.TaxRate)
	}
}
