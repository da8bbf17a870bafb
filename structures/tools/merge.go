package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/navijation/njalgo/structures/linkedlist"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func mergeCommand(_ context.Context, cmd *cli.Command) error {
	logger := configureLogging(cmd)

	left, err := parseInts(cmd.String("left"))
	if err != nil {
		return errors.Wrap(err, "left")
	}
	right, err := parseInts(cmd.String("right"))
	if err != nil {
		return errors.Wrap(err, "right")
	}

	logger.WithField("left", len(left)).WithField("right", len(right)).Debug("merging lists")
	return printMerged(os.Stdout, left, right)
}

func printMerged(w io.Writer, left, right []int) error {
	if !slices.IsSorted(left) {
		return errors.Errorf("left list must be ascending: %v", left)
	}
	if !slices.IsSorted(right) {
		return errors.Errorf("right list must be ascending: %v", right)
	}

	merged := linkedlist.Merge(
		linkedlist.FromSeq(slices.Values(left)),
		linkedlist.FromSeq(slices.Values(right)),
	)

	_, err := fmt.Fprintln(w, merged.String())
	return err
}
