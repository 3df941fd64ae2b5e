package cmdtree

// WithCallback sets the function run when the command is matched
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.action = callback
	}
}

// WithCommandHelp sets the one-line summary shown in the parent's command list
func WithCommandHelp(help string) ConfigureCommandFunc {
	return func(command *Command) {
		command.help = help
	}
}

// WithCommandDescription sets the longer text shown in the command's own help
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithExample sets a usage example shown in the command's help
func WithExample(example string) ConfigureCommandFunc {
	return func(command *Command) {
		command.example = example
	}
}
