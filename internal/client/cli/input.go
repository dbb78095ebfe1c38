package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// lineReader is the part of *readline.Instance the console uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// ask prints prompt on the input line and returns the trimmed answer.
func (a *App) ask(prompt string) (string, error) {
	a.in.SetPrompt(prompt)
	line, err := a.in.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askSecret reads a value from the terminal without echo.
func (a *App) askSecret(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// parseArgs splits a command line on spaces. Double quotes group words
// into one argument.
func parseArgs(line string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case (r == ' ' || r == '\t') && !quoted:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
