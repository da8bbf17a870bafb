package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/navijation/njalgo/util/heap"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

type task struct {
	ID       uuid.UUID
	Name     string
	Priority int
}

func scheduleCommand(_ context.Context, cmd *cli.Command) error {
	logger := configureLogging(cmd)

	tasks, err := parseTasks(cmd.Args().Slice())
	if err != nil {
		return err
	}

	logger.WithField("tasks", len(tasks)).Debug("scheduling tasks")
	return printSchedule(os.Stdout, tasks)
}

func parseTasks(specs []string) (out []task, _ error) {
	for _, spec := range specs {
		name, rawPriority, found := strings.Cut(spec, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, errors.Errorf("task %q must be in \"name:priority\" format", spec)
		}

		priority, err := strconv.Atoi(strings.TrimSpace(rawPriority))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid priority for task %q", name)
		}

		out = append(out, task{
			ID:       uuid.New(),
			Name:     strings.TrimSpace(name),
			Priority: priority,
		})
	}
	return out, nil
}

func newTaskHeap() *heap.Heap[task] {
	// higher priorities run first; equal priorities run in name order
	return heap.New(func(a, b task) bool {
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Name < b.Name
	})
}

func printSchedule(w io.Writer, tasks []task) error {
	h := newTaskHeap()
	for _, t := range tasks {
		h.Add(t)
	}

	for t := range h.Drain() {
		if _, err := fmt.Fprintf(w, "%d %s %s\n", t.Priority, t.Name, t.ID); err != nil {
			return err
		}
	}
	return nil
}
