// Package command dispatches chat commands to calculator operations and turns
// their results and errors into reply text.
package command

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/message"

	"github.com/udisondev/growthcalc/internal/calcerr"
	"github.com/udisondev/growthcalc/internal/i18n"
)

// Prefix starts every command line.
const Prefix = "/"

// Command is a chat command (/command).
type Command interface {
	// Handle executes the command. params is the rest of the message after
	// the command name, trimmed.
	Handle(params string) (string, error)
	// Names returns all registered command names (without / prefix).
	Names() []string
}

// Handler dispatches commands by name.
// Thread-safe: commands are registered once at startup, then read-only.
type Handler struct {
	mu   sync.RWMutex
	cmds map[string]Command // name → Command (lowercase)

	p *message.Printer
}

// NewHandler creates a handler rendering replies through p.
func NewHandler(p *message.Printer) *Handler {
	return &Handler{
		cmds: make(map[string]Command, 16),
		p:    p,
	}
}

// Register registers a command under all of its names.
// Names are lowercased for case-insensitive lookup.
func (h *Handler) Register(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range cmd.Names() {
		h.cmds[strings.ToLower(name)] = cmd
	}
}

// Lookup returns the command registered under name.
func (h *Handler) Lookup(name string) (Command, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cmd, ok := h.cmds[strings.ToLower(name)]
	return cmd, ok
}

// Names returns every registered name, sorted.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.cmds))
	for name := range h.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CommandCount returns number of registered command names.
func (h *Handler) CommandCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cmds)
}

// HandleLine processes one line of chat input. Lines without the command
// prefix are not commands and return ok=false with no reply.
func (h *Handler) HandleLine(line string) (reply string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Prefix) {
		return "", false
	}
	return h.Handle(strings.TrimPrefix(line, Prefix))
}

// Handle processes a message WITHOUT the / prefix.
// Returns false if no command is registered under the name; the reply then
// reports the unknown command.
func (h *Handler) Handle(text string) (reply string, ok bool) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", false
	}
	name := parts[0]

	cmd, ok := h.Lookup(name)
	if !ok {
		slog.Debug("unknown command", "command", name)
		return h.p.Sprintf(i18n.MsgUnknownCommand, name), false
	}

	params := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), name))

	slog.Debug("command", "command", name, "params", params)

	reply, err := cmd.Handle(params)
	if err != nil {
		return h.renderError(name, params, err), true
	}
	return reply, true
}

// renderError turns a command error into reply text. Input errors are the
// user's to fix and are logged at warn; anything else is a defect, logged
// with full context and hidden behind a generic reply.
func (h *Handler) renderError(name, params string, err error) string {
	e, ok := calcerr.As(err)
	if !ok {
		slog.Error("command failed",
			"command", name,
			"params", params,
			"error", err)
		return h.p.Sprintf(i18n.MsgCalcFailed, name)
	}

	slog.Warn("command input rejected",
		"command", name,
		"params", params,
		"kind", e.Kind.String(),
		"error", err)

	msg := e.Localize(h.p)
	switch e.Kind {
	case calcerr.KindFormat, calcerr.KindValidation:
		return h.p.Sprintf(i18n.MsgInputError, msg, name)
	case calcerr.KindMissingParameter:
		return h.p.Sprintf(i18n.MsgMissingHint, msg, name)
	case calcerr.KindAmbiguity:
		return h.p.Sprintf(i18n.MsgAmbiguityHint, msg, name, h.p.Sprintf(e.Example))
	default:
		return h.p.Sprintf(i18n.MsgCalcFailed, name)
	}
}
