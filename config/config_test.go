package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputFile != "priv_validator_key.json" {
		t.Errorf("OutputFile = %q, want priv_validator_key.json", cfg.OutputFile)
	}
	if cfg.Strength != 256 {
		t.Errorf("Strength = %d, want 256", cfg.Strength)
	}
	if cfg.WordlistPath != "" {
		t.Errorf("WordlistPath = %q, want built-in (empty)", cfg.WordlistPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"12-word strength", func(c *Config) { c.Strength = 128 }, false},
		{"strength too low", func(c *Config) { c.Strength = 64 }, true},
		{"strength not a multiple", func(c *Config) { c.Strength = 200 }, true},
		{"empty output", func(c *Config) { c.OutputFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
