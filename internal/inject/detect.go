package inject

import (
	"fmt"
	"path/filepath"

	vityerrors "github.com/vityhq/vity/internal/errors"
)

// EnvShellOverride forces dialect selection regardless of other signals.
// The integration wrapper exports it so nested shells resolve correctly.
const EnvShellOverride = "VITY_SHELL"

// Detect selects the Dialect for the active interactive shell by
// environment introspection.
//
// Order of precedence:
//  1. VITY_SHELL override ("bash" or "zsh")
//  2. ZSH_VERSION, which only zsh exports
//  3. the basename of $SHELL
//
// Unknown shells yield ErrUnsupportedDialect; callers are expected to
// degrade to a no-op rather than fail the surrounding command flow.
func Detect(env Env) (Dialect, error) {
	name := env(EnvShellOverride)
	if name == "" {
		if env("ZSH_VERSION") != "" {
			name = "zsh"
		} else {
			name = filepath.Base(env("SHELL"))
		}
	}

	switch name {
	case "zsh":
		return NewZshDialect(env), nil
	case "bash", "sh":
		// sh is almost always bash in disguise on systems where vity is
		// installed; its history file handling is identical.
		return NewBashDialect(env), nil
	case "", ".":
		return nil, fmt.Errorf("%w: no shell detected", vityerrors.ErrUnsupportedDialect)
	default:
		return nil, fmt.Errorf("%w: %s", vityerrors.ErrUnsupportedDialect, name)
	}
}
