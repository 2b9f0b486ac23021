package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sherror "github.com/msto63/strhelp/foundation/core/error"
)

// readStrings returns args if any were given, else the lines of file, else
// the lines of stdin. Empty lines are dropped.
func readStrings(cmd *cobra.Command, args []string, file string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, sherror.Wrap(err, "failed to open input").
				WithCode(sherror.CodeNotFound).
				WithDetail("file", file)
		}
		defer f.Close()
		return readLines(f)
	}

	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, sherror.Wrap(err, "failed to read input").WithCode(sherror.CodeInternal)
	}
	return lines, nil
}

// separator converts a one-character flag value into a byte
func separator(value string) (byte, error) {
	if len(value) != 1 {
		return 0, sherror.Newf("separator must be a single byte, got %q", value).
			WithCode(sherror.CodeInvalidInput).
			WithDetail("separator", value)
	}
	return value[0], nil
}
