// Package shell manages the vity shell integration snippet.
//
// The snippet defines a vity() wrapper function in the user's rc file. The
// wrapper is what makes in-memory history injection possible: only code
// running inside the interactive shell process can append to its history
// list, so the wrapper extracts the injector's marker line from vity's
// output and feeds it to the dialect's append builtin.
package shell

import (
	"fmt"
	"strings"

	"github.com/vityhq/vity/internal/inject"
)

// Rc-file block markers. Install writes exactly one block between them and
// uninstall removes exactly that block.
const (
	MarkerBegin = "# vity shell integration begin"
	MarkerEnd   = "# vity shell integration end"
)

// Snippet returns the integration wrapper sourced by both bash and zsh.
// The dialect branch happens at runtime on ZSH_VERSION, so one snippet
// serves both rc files.
func Snippet() string {
	bash := inject.NewBashDialect(inject.OSEnv())
	zsh := inject.NewZshDialect(inject.OSEnv())
	return snippetFor(bash.InMemoryBuiltin(), zsh.InMemoryBuiltin())
}

// snippetFor renders the wrapper with the given in-memory append builtins.
func snippetFor(bashBuiltin, zshBuiltin string) string {
	var b strings.Builder
	b.WriteString(MarkerBegin + "\n")
	b.WriteString(fmt.Sprintf(`vity() {
    case "$1" in
    do)
        shift
        local _vity_out _vity_cmd
        if [ -n "$VITY_ACTIVE_LOG" ] && [ -f "$VITY_ACTIVE_LOG" ]; then
            _vity_out=$(command vity do --log "$VITY_ACTIVE_LOG" --chat "$VITY_ACTIVE_CHAT" "$@" 2>&1)
        else
            _vity_out=$(command vity do "$@" 2>&1)
        fi

        # Show everything except the marker line.
        printf '%%s\n' "$_vity_out" | grep -v '^%[1]s'

        # The marker carries the sanitized command; append it to the
        # session's in-memory history so up-arrow recalls it immediately.
        _vity_cmd=$(printf '%%s\n' "$_vity_out" | grep '^%[1]s' | head -1 | sed 's/^%[1]s//')
        if [ -n "$_vity_cmd" ]; then
            if [ -n "$ZSH_VERSION" ]; then
                %[3]s "$_vity_cmd"
            else
                %[2]s "$_vity_cmd"
            fi
        fi
        ;;
    chat)
        shift
        if [ -n "$VITY_ACTIVE_LOG" ] && [ -f "$VITY_ACTIVE_LOG" ]; then
            command vity chat --log "$VITY_ACTIVE_LOG" --chat "$VITY_ACTIVE_CHAT" "$@"
        else
            command vity chat "$@"
        fi
        ;;
    *)
        command vity "$@"
        ;;
    esac
}
`, inject.Marker, bashBuiltin, zshBuiltin))
	b.WriteString(MarkerEnd + "\n")
	return b.String()
}
