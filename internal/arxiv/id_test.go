package arxiv

import "testing"

func TestValidID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2301.07041", true},
		{"2301.07041v2", true},
		{"1706.03762", true},
		{"9912.12345", true},
		{"cs.AI/0001001", true},
		{"hep-th/9901001", true},
		{"math.GN/0601001", true},
		{"CS/0001001", false},
		{"not an id", false},
		{"2301.07", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidID(tt.input); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
