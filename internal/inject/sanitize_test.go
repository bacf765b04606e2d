package inject

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain command unchanged", "list all files", "list all files"},
		{"single-line with quotes unchanged", `grep -r "TODO" .`, `grep -r "TODO" .`},
		{"embedded newline becomes space", "echo 'hello\nworld'", "echo 'hello world'"},
		{"crlf becomes space", "echo 'hello\r\nworld'", "echo 'hello world'"},
		{"multiple newlines all removed", "a\nb\nc", "a b c"},
		{"newline run collapses to one space", "a\n\n\nb", "a b"},
		{"leading and trailing newlines trimmed", "\nls -la\n", "ls -la"},
		{"empty string", "", ""},
		{"whitespace only", " \n\t ", ""},
		{"special characters untouched", "awk '{print $1}' | sort; echo $?", "awk '{print $1}' | sort; echo $?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// Idempotence: sanitizing an already-sanitized string is a no-op.
			if again := Sanitize(got); again != got {
				t.Errorf("Sanitize not idempotent: Sanitize(%q) = %q", got, again)
			}
		})
	}
}
