package config

import "testing"

func TestLoadClampsCafeSearchRate(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-5", 1},
		{"12", 12},
		{"", 30},
		{"banana", 30},
	}

	for _, tc := range tests {
		t.Setenv("CAFE_SEARCH_RATE_LIMIT", tc.raw)
		cfg := Load()
		if cfg.CafeSearchRate != tc.want {
			t.Errorf("CAFE_SEARCH_RATE_LIMIT=%q: CafeSearchRate = %d, want %d", tc.raw, cfg.CafeSearchRate, tc.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
}
