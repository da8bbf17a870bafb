package main

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// parseInts accepts values separated by commas or whitespace, possibly spread
// over several arguments.
func parseInts(raw ...string) (out []int, _ error) {
	for _, arg := range raw {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid value %q", field)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func readValues(path string, args []string) ([]int, error) {
	if path == "" {
		return parseInts(args...)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read values from %q", path)
	}
	return parseInts(string(content))
}

func commandValues(cmd *cli.Command) ([]int, error) {
	return readValues(cmd.String("file"), cmd.Args().Slice())
}
