package errs

import "sync"

// MessageProvider resolves a message key to a format string
type MessageProvider interface {
	GetMessage(key string) string
}

// MapMessageProvider is a MessageProvider backed by a plain map. Keys
// missing from the map resolve to themselves.
type MapMessageProvider map[string]string

// GetMessage returns the format string registered for key
func (m MapMessageProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}

	return key
}

// DefaultMessages holds the English format strings used when no other provider is set
var DefaultMessages = MapMessageProvider{
	ErrInvalidFlagSpecKey:         "invalid flag specification '%s': unrecognised token '%s'",
	ErrInvalidArityValueKey:       "invalid arity '%s' for operand '%s'",
	ErrDuplicateCommandKey:        "command '%s' is already declared under '%s'",
	ErrDuplicateFlagKey:           "flag '%s' is already declared under '%s'",
	ErrEmptyNameKey:               "%s name must not be empty",
	ErrUnknownOptionKey:           "unknown option '%s'",
	ErrMissingOptionValueKey:      "option '%s' expects a value",
	ErrInvalidOptionValueKey:      "invalid value '%s' for option '%s': %s",
	ErrInvalidOperandValueKey:     "invalid value '%s' for operand '%s': %s",
	ErrMissingRequiredOptionKey:   "missing required option '%s'",
	ErrTooFewOperandsKey:          "too few operands for '%s': expected at least %d, got %d",
	ErrTooManyOperandsKey:         "too many operands for '%s': expected at most %d, got %d",
	ErrUnexpectedExtraArgumentKey: "unexpected extra argument '%s'",
	ErrUnknownCommandKey:          "unknown command '%s'",
	ErrActionFailedKey:            "action for '%s' failed",
	ErrSplitFailedKey:             "could not split '%s' into arguments",
}

var (
	provider    MessageProvider = DefaultMessages
	providerMux sync.RWMutex
)

// SetMessageProvider replaces the provider used to render every error. Passing nil
// restores DefaultMessages.
func SetMessageProvider(p MessageProvider) {
	providerMux.Lock()
	defer providerMux.Unlock()
	if p == nil {
		p = DefaultMessages
	}
	provider = p
}

func currentProvider() MessageProvider {
	providerMux.RLock()
	defer providerMux.RUnlock()

	return provider
}
