package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// passwordEnv lets scripts supply the password without a prompt.
const passwordEnv = "RECIPE_KEEPER_PASSWORD"

var errEmptyPassword = errors.New("empty password")

// passwordFunc returns the password for the current command.
type passwordFunc func() (string, error)

// newPasswordSource reads the password from passwordEnv, else from the
// terminal without echo, else from the first line of in. Passwords are never
// taken from the command line, where ps and shell history would keep them.
func newPasswordSource(in *os.File, prompt io.Writer) passwordFunc {
	return func() (string, error) {
		if password, ok := os.LookupEnv(passwordEnv); ok && password != "" {
			return password, nil
		}

		if term.IsTerminal(int(in.Fd())) {
			fmt.Fprint(prompt, "Password: ")
			raw, err := term.ReadPassword(int(in.Fd()))
			fmt.Fprintln(prompt)
			if err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			return nonEmpty(string(raw))
		}

		return readPasswordLine(in)
	}
}

// readPasswordLine reads one line from r, for passwords piped on stdin.
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return nonEmpty(strings.TrimRight(line, "\r\n"))
}

func nonEmpty(password string) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}
