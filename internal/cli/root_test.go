package cli

import "testing"

func TestParseTileWidth(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"16", 16, false},
		{"32", 32, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"sixteen", 0, true},
		{"16.5", 0, true},
		{"", 0, true},
		{"16px", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTileWidth(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTileWidth(%q) = %d, want error", tt.arg, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTileWidth(%q): %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTileWidth(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
