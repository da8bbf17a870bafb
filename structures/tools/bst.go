package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/navijation/njalgo/structures/bst"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func bstCommand(_ context.Context, cmd *cli.Command) error {
	logger := configureLogging(cmd)

	inserts, err := parseInts(cmd.String("insert"))
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	queries, err := commandValues(cmd)
	if err != nil {
		return err
	}

	logger.WithField("inserts", len(inserts)).WithField("queries", len(queries)).Debug("searching tree")
	return printMembership(os.Stdout, inserts, queries)
}

func printMembership(w io.Writer, inserts, queries []int) error {
	tree := bst.New[int]()
	for _, v := range inserts {
		tree.Insert(v)
	}

	for _, q := range queries {
		if _, err := fmt.Fprintf(w, "%d: %t\n", q, tree.Contains(q)); err != nil {
			return err
		}
	}
	return nil
}
