package ai

import "regexp"

// Redaction patterns for terminal context sent to a provider. Captured
// scrollback routinely contains exported keys and tokens; basic redaction
// strips the recognizable ones before anything leaves the machine.
var redactPatterns = []*regexp.Regexp{
	// API keys
	regexp.MustCompile(`(?i)(api[_-]?key|apikey)["']?\s*[:=]\s*["']?[a-zA-Z0-9_\-]{16,}["']?`),
	regexp.MustCompile(`(?i)sk-[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`(?i)AKIA[0-9A-Z]{16}`),
	// Passwords
	regexp.MustCompile(`(?i)(password|passwd|pass)["']?\s*[:=]\s*["']?[^\s"']+["']?`),
	// Tokens
	regexp.MustCompile(`(?i)(token|access[_-]?token|refresh[_-]?token)["']?\s*[:=]\s*["']?[a-zA-Z0-9_\-\.~=]{20,}["']?`),
	regexp.MustCompile(`(?i)gh[pousr]_[a-zA-Z0-9]{36,}`),
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_\-\.~=]+`),
	// Secrets
	regexp.MustCompile(`(?i)(secret|secret[_-]?key)["']?\s*[:=]\s*["']?[a-zA-Z0-9_\-]{16,}["']?`),
	// Private keys
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE\s+KEY-----`),
}

// emailPattern is only applied at the strict level; addresses show up in
// ordinary git output and redacting them at the basic level destroys
// context.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Redact strips sensitive material from terminal context according to the
// configured level ("none", "basic", "strict").
func Redact(s, level string) string {
	if s == "" || level == "none" {
		return s
	}

	result := s
	for _, p := range redactPatterns {
		result = p.ReplaceAllString(result, "<REDACTED>")
	}
	if level == "strict" {
		result = emailPattern.ReplaceAllString(result, "<REDACTED>")
	}
	return result
}
