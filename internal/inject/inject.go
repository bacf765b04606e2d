package inject

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	vityerrors "github.com/vityhq/vity/internal/errors"
)

// Marker prefixes the stdout line that carries the sanitized command to the
// shell integration wrapper. The wrapper strips the line from display output
// and feeds the payload to the dialect's in-memory append builtin inside the
// interactive shell process.
const Marker = "__VITY_CMD__:"

// Policy controls when the injector appends to the history file itself, as
// opposed to relying on the shell's own persistence.
type Policy string

const (
	// PolicyAuto appends only when the dialect shows no incremental
	// persistence signals. Preferred: a session configured for
	// shared/incremental history already writes each entry itself, and a
	// second forced append would duplicate it.
	PolicyAuto Policy = "auto"

	// PolicyAlways appends on every injection, trading possible
	// duplicates for guaranteed immediate cross-session visibility.
	PolicyAlways Policy = "always"

	// PolicyNever performs no file writes at all.
	PolicyNever Policy = "never"
)

// ParsePolicy parses a flush policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAuto, PolicyAlways, PolicyNever:
		return Policy(s), nil
	case "":
		return PolicyAuto, nil
	default:
		return "", fmt.Errorf("%w: flush policy %q", vityerrors.ErrInvalid, s)
	}
}

// Injector records a command as the most recent history entry of the
// current interactive session.
type Injector struct {
	dialect Dialect
	policy  Policy
	out     io.Writer
	now     func() time.Time
	log     zerolog.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithPolicy sets the flush policy (default PolicyAuto).
func WithPolicy(p Policy) Option {
	return func(i *Injector) { i.policy = p }
}

// WithOutput sets the writer that receives the marker line (default
// os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(i *Injector) { i.out = w }
}

// WithClock sets the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(i *Injector) { i.now = now }
}

// WithLogger sets the debug log channel.
func WithLogger(log zerolog.Logger) Option {
	return func(i *Injector) { i.log = log }
}

// New creates an Injector for the given dialect.
func New(dialect Dialect, opts ...Option) *Injector {
	inj := &Injector{
		dialect: dialect,
		policy:  PolicyAuto,
		out:     os.Stdout,
		now:     time.Now,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// Inject records cmd as the newest history entry of the current session.
//
// Empty and whitespace-only commands are a no-op. The command is sanitized
// first, then announced on the marker channel for the wrapper's in-memory
// append, then appended to the history file according to the flush policy.
//
// Errors are reported once and never retried: a re-attempted append risks a
// duplicate entry. Callers must treat failures as a loss of convenience,
// not of functionality - log them to the debug channel and move on.
func (i *Injector) Inject(cmd string) error {
	sanitized := Sanitize(cmd)
	if sanitized == "" {
		return nil
	}

	if !i.dialect.Enabled() {
		i.log.Debug().Str("dialect", i.dialect.Name()).Msg("history disabled, skipping injection")
		return &vityerrors.InjectError{Dialect: i.dialect.Name(), Err: vityerrors.ErrHistoryDisabled}
	}

	// In-memory append, delegated to the wrapper running inside the shell.
	if _, err := fmt.Fprintf(i.out, "%s%s\n", Marker, sanitized); err != nil {
		return &vityerrors.InjectError{Dialect: i.dialect.Name(), Err: err}
	}

	if !i.shouldPersist() {
		i.log.Debug().
			Str("dialect", i.dialect.Name()).
			Str("policy", string(i.policy)).
			Msg("skipping history file append")
		return nil
	}

	if err := i.appendEntry(sanitized); err != nil {
		i.log.Debug().Err(err).Str("dialect", i.dialect.Name()).Msg("history file append failed")
		return &vityerrors.InjectError{Dialect: i.dialect.Name(), Err: err}
	}

	i.log.Debug().
		Str("dialect", i.dialect.Name()).
		Str("file", i.dialect.HistoryFile()).
		Msg("injected history entry")
	return nil
}

// shouldPersist applies the flush policy.
func (i *Injector) shouldPersist() bool {
	switch i.policy {
	case PolicyAlways:
		return true
	case PolicyNever:
		return false
	default:
		return !i.dialect.IncrementalPersist()
	}
}

// appendEntry appends one formatted record to the history file. The file is
// opened append-only: the injector never seeks, truncates, or locks - the
// shell's history-sharing subsystem owns the concurrency discipline.
func (i *Injector) appendEntry(cmd string) error {
	entry := i.dialect.FormatEntry(cmd, i.now())

	file, err := os.OpenFile(i.dialect.HistoryFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", vityerrors.ErrIO, err)
	}
	defer file.Close()

	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("%w: %v", vityerrors.ErrIO, err)
	}
	return nil
}
