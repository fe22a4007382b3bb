// Package credential resolves API keys for named services. Resolution order
// is environment variable first, then a masked interactive prompt when one is
// possible. Resolved values are held in memory only and are never logged.
package credential

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	input "github.com/tcnksm/go-input"
)

// Resolver obtains credentials for named services.
type Resolver struct {
	prompt     func(service string) (string, error)
	isTerminal func() bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrompt overrides the interactive prompt, mainly for tests.
func WithPrompt(fn func(service string) (string, error)) Option {
	return func(r *Resolver) {
		r.prompt = fn
	}
}

// WithTerminalCheck overrides interactive-terminal detection, mainly for tests.
func WithTerminalCheck(fn func() bool) Option {
	return func(r *Resolver) {
		r.isTerminal = fn
	}
}

// NewResolver creates a Resolver that prompts on the process's stdin/stderr.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		prompt: askMasked,
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EnvVar returns the environment variable name for a service, by convention
// the uppercased service name suffixed with _API_KEY.
func EnvVar(service string) string {
	return strings.ToUpper(service) + "_API_KEY"
}

// Resolve returns the credential for a service and whether one was found.
//
// The environment variable is checked first; a non-empty value is returned
// as-is without touching the prompt. Otherwise the user is asked for the key
// with masked input. Outside an interactive terminal no prompt is attempted
// and absence is reported rather than an error.
func (r *Resolver) Resolve(service string) (string, bool) {
	if key := strings.TrimSpace(os.Getenv(EnvVar(service))); key != "" {
		return key, true
	}

	if !r.isTerminal() {
		return "", false
	}

	answer, err := r.prompt(service)
	if err != nil || strings.TrimSpace(answer) == "" {
		return "", false
	}
	return strings.TrimSpace(answer), true
}

// askMasked reads the key from the terminal without echoing it back.
func askMasked(service string) (string, error) {
	ui := &input.UI{
		Writer: os.Stderr,
		Reader: os.Stdin,
	}
	return ui.Ask(fmt.Sprintf("Enter your %s API key", strings.ToUpper(service)), &input.Options{
		Required:    true,
		Mask:        true,
		MaskDefault: true,
	})
}
