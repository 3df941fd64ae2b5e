package parse

import (
	"regexp"
	"strings"
)

var (
	shortFlagPattern = regexp.MustCompile(`^-[a-zA-Z0-9]$`)
	longFlagPattern  = regexp.MustCompile(`^--[a-zA-Z][a-zA-Z0-9-]+$`)
	variablePattern  = regexp.MustCompile(`^<([^<>]+)>$`)

	shortOptionToken = regexp.MustCompile(`^-([a-zA-Z0-9])(.*)$`)
	longOptionToken  = regexp.MustCompile(`^(--[a-zA-Z][a-zA-Z0-9-]+)(?:=(.*))?$`)
)

// LiteralSeparator switches parsing into literal mode: every later token is an operand
const LiteralSeparator = "--"

// FlagSpec is the result of lexing a flag specification such as "-o, --output <file>"
type FlagSpec struct {
	Flags    []string
	Variable string
	// HasVariable is true when a <variable> placeholder was present
	HasVariable bool
}

// FlagSpecError names the token of a flag specification that could not be lexed
type FlagSpecError struct {
	Token string
}

func (e *FlagSpecError) Error() string {
	return "unrecognised flag specification token '" + e.Token + "'"
}

// ParseFlagSpec splits spec on commas, pipes and spaces and classifies each token as a
// short flag, a long flag or a <variable> placeholder. At most one placeholder is allowed.
func ParseFlagSpec(spec string) (FlagSpec, error) {
	var fs FlagSpec
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	for _, field := range fields {
		switch {
		case shortFlagPattern.MatchString(field), longFlagPattern.MatchString(field):
			fs.Flags = append(fs.Flags, field)
		case variablePattern.MatchString(field) && !fs.HasVariable:
			fs.Variable = variablePattern.FindStringSubmatch(field)[1]
			fs.HasVariable = true
		default:
			return FlagSpec{}, &FlagSpecError{Token: field}
		}
	}

	return fs, nil
}

// ShortOption matches tokens such as -a, -abc, -a=1 or -ofile. It returns the flag
// (e.g. "-a") and everything after the flag character, which is either empty, an
// attached "=value", a glued value or further grouped short flags; the caller decides
// which once the flag has been resolved.
func ShortOption(token string) (flag, rest string, ok bool) {
	m := shortOptionToken.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}

	return "-" + m[1], m[2], true
}

// LongOption matches tokens such as --name or --name=value
func LongOption(token string) (flag, value string, hasValue, ok bool) {
	m := longOptionToken.FindStringSubmatch(token)
	if m == nil {
		return "", "", false, false
	}

	return m[1], m[2], strings.Contains(token, "="), true
}
