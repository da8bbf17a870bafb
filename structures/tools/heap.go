package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/navijation/njalgo/util/heap"
	"github.com/urfave/cli/v3"
)

func heapCommand(_ context.Context, cmd *cli.Command) error {
	logger := configureLogging(cmd)

	values, err := commandValues(cmd)
	if err != nil {
		return err
	}

	logger.WithField("values", len(values)).Debug("draining heap")
	return printHeapOrder(os.Stdout, values, cmd.Bool("max"))
}

func printHeapOrder(w io.Writer, values []int, largestFirst bool) error {
	h := heap.NewMin[int]()
	if largestFirst {
		h = heap.NewMax[int]()
	}

	for _, v := range values {
		h.Add(v)
	}

	for v := range h.Drain() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
