package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// GetSimpleText prints prompt to w and reads one trimmed line. A final line
// without a newline is returned as is.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPin reads a PIN. On a terminal it is read without echo; otherwise it
// is an ordinary line from reader, which keeps piped input working. Input
// that is not a number becomes 0, which never matches an account.
func GetPin(reader *bufio.Reader, w io.Writer) (int, error) {
	if !isTerminal(stdinFd()) {
		s, err := GetSimpleText(reader, "PIN", w)
		if err != nil {
			return 0, err
		}
		return parsePin(s), nil
	}

	if _, err := fmt.Fprint(w, "PIN: "); err != nil {
		return 0, err
	}
	pw, err := readPassword(stdinFd())
	fmt.Fprintln(w)
	if err != nil {
		return 0, err
	}
	return parsePin(string(pw)), nil
}

func parsePin(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// argOrPrompt returns args[i] when present and prompts for it otherwise.
func argOrPrompt(args []string, i int, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return GetSimpleText(reader, prompt, w)
}
