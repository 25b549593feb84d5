package config

import "testing"

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		appEnv    string
		rawLevel  string
		wantLevel string
		wantErr   bool
	}{
		// production cases
		{
			name:      "production with empty level should default to info",
			appEnv:    "production",
			rawLevel:  "",
			wantLevel: "info",
		},
		{
			name:     "production with debug should fail",
			appEnv:   "production",
			rawLevel: "debug",
			wantErr:  true,
		},
		{
			name:      "production with warn should succeed",
			appEnv:    "production",
			rawLevel:  "WARN",
			wantLevel: "warn",
		},

		// dev / test cases
		{
			name:      "empty APP_ENV with empty level should use debug",
			appEnv:    "",
			rawLevel:  "",
			wantLevel: "debug",
		},
		{
			name:      "development with debug should succeed",
			appEnv:    "development",
			rawLevel:  "debug",
			wantLevel: "debug",
		},
		{
			name:     "unknown level should fail",
			appEnv:   "development",
			rawLevel: "verbose",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLogLevel(tt.appEnv, tt.rawLevel)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (level=%s)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantLevel {
				t.Errorf("expected level %s, got %s", tt.wantLevel, got)
			}
		})
	}
}
