package safety

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		command string
		flagged bool
	}{
		{"recursive delete of root path", "rm -rf /var/lib/docker", true},
		{"disk overwrite", "dd if=/dev/zero of=/dev/sda", true},
		{"force push", "git push --force origin main", true},
		{"hard reset", "git reset --hard HEAD~3", true},
		{"world writable", "chmod -R 777 .", true},
		{"plain list", "ls -la", false},
		{"ordinary rm", "rm build.log", false},
		{"ordinary push", "git push origin main", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Check(tt.command)
			if (w != nil) != tt.flagged {
				t.Errorf("Check(%q) = %v, flagged want %v", tt.command, w, tt.flagged)
			}
			if w != nil && w.String() == "" {
				t.Error("flagged warning must render a message")
			}
		})
	}
}
