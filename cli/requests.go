package cli

import "github.com/napalu/cmdtree"

// HelpRequest is returned by the action of a help option. It interrupts parsing and
// is rendered by App instead of being reported as a failure.
type HelpRequest struct {
	Command *cmdtree.Command
}

func (h *HelpRequest) Error() string {
	return "help requested for '" + h.Command.Path() + "'"
}

func (h *HelpRequest) Interrupt() {}

// VersionRequest is returned by the action of the version option
type VersionRequest struct {
	Version string
}

func (v *VersionRequest) Error() string {
	return "version requested"
}

func (v *VersionRequest) Interrupt() {}
