package errs

// PrefixKey is the prefix shared by every cmdtree message key
const PrefixKey = "cmdtree"

const (
	ErrorPrefixKey = PrefixKey + ".error"
	schemaKey      = ErrorPrefixKey + ".schema"
	parseKey       = ErrorPrefixKey + ".parse"
)

// Construction-time errors
const (
	ErrInvalidFlagSpecKey   = schemaKey + ".invalid_flag_spec"
	ErrInvalidArityValueKey = schemaKey + ".invalid_arity_value"
	ErrDuplicateCommandKey  = schemaKey + ".duplicate_command"
	ErrDuplicateFlagKey     = schemaKey + ".duplicate_flag"
	ErrEmptyNameKey         = schemaKey + ".empty_name"
)

// Parse-time errors
const (
	ErrUnknownOptionKey           = parseKey + ".unknown_option"
	ErrMissingOptionValueKey      = parseKey + ".missing_option_value"
	ErrInvalidOptionValueKey      = parseKey + ".invalid_option_value"
	ErrInvalidOperandValueKey     = parseKey + ".invalid_operand_value"
	ErrMissingRequiredOptionKey   = parseKey + ".missing_required_option"
	ErrTooFewOperandsKey          = parseKey + ".too_few_operands"
	ErrTooManyOperandsKey         = parseKey + ".too_many_operands"
	ErrUnexpectedExtraArgumentKey = parseKey + ".unexpected_extra_argument"
	ErrUnknownCommandKey          = parseKey + ".unknown_command"
	ErrActionFailedKey            = parseKey + ".action_failed"
	ErrSplitFailedKey             = parseKey + ".split_failed"
)
