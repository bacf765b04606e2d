package cli

import "testing"

func TestShellLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/dev/.bashrc", "Bash"},
		{"/home/dev/.zshrc", "Zsh"},
	}
	for _, tt := range tests {
		if got := shellLabel(tt.path); got != tt.want {
			t.Errorf("shellLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
