package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/navijation/njalgo/structures/stack"
	"github.com/urfave/cli/v3"
)

func stackCommand(_ context.Context, cmd *cli.Command) error {
	logger := configureLogging(cmd)

	values, err := commandValues(cmd)
	if err != nil {
		return err
	}

	logger.WithField("values", len(values)).Debug("unwinding stack")
	return printPopOrder(os.Stdout, values)
}

func printPopOrder(w io.Writer, values []int) error {
	s := stack.New[int]()
	for _, v := range values {
		s.Push(v)
	}

	for {
		v, err := s.Pop()
		if errors.Is(err, stack.ErrEmptyStack) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
}
