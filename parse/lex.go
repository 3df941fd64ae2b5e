package parse

import "github.com/google/shlex"

// Split breaks a shell-style command string into tokens, honouring quotes and escapes
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []string{}
	}

	return args, nil
}
