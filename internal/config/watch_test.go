package config

import "testing"

func TestParseWatchArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantAddr string
		wantErr  bool
	}{
		{"host only uses default port", []string{"--join", "192.168.1.10"}, "192.168.1.10:5555", false},
		{"host with port", []string{"--join", "localhost:7000"}, "localhost:7000", false},
		{"port flag", []string{"--join", "localhost", "--port", "6000"}, "localhost:6000", false},
		{"ipv6 host", []string{"--join", "::1"}, "[::1]:5555", false},
		{"missing join", nil, "", true},
		{"bad port", []string{"--join", "localhost", "--port", "0"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseWatchArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Addr != tt.wantAddr {
				t.Errorf("expected addr %q, got %q", tt.wantAddr, cfg.Addr)
			}
		})
	}
}

func TestParseWatchArgs_Name(t *testing.T) {
	cfg, err := ParseWatchArgs([]string{"--join", "localhost", "--name", "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ViewerName != "Ana" {
		t.Errorf("expected viewer name Ana, got %q", cfg.ViewerName)
	}
}
