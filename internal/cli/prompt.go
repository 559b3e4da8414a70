package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints message to w followed by a y/N prompt and reads one line
// from r. Only an explicit "y" or "yes" (case-insensitive) accepts;
// anything else, including an empty line or EOF, declines.
func Confirm(w io.Writer, r io.Reader, message string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", message)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		fmt.Fprintln(w)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
