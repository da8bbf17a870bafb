package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "njalgo_tools",
		Usage: "exercise the heap, merge, search tree and stack from the command line",
		Commands: []*cli.Command{
			{
				Name:      "heap",
				Usage:     "add values to a heap and print them in extraction order",
				ArgsUsage: "[value ...]",
				Action:    heapCommand,
				Flags: append(commonFlags(),
					&cli.BoolFlag{
						Name:  "max",
						Usage: "extract the largest value first",
					},
				),
			},
			{
				Name:      "schedule",
				Usage:     "queue named tasks and print them by descending priority",
				ArgsUsage: "name:priority [name:priority ...]",
				Action:    scheduleCommand,
				Flags:     commonFlags(),
			},
			{
				Name:   "merge",
				Usage:  "merge two ascending lists",
				Action: mergeCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "left",
						Usage: "comma separated ascending values",
					},
					&cli.StringFlag{
						Name:  "right",
						Usage: "comma separated ascending values",
					},
				),
			},
			{
				Name:      "bst",
				Usage:     "build a search tree and report membership of the given values",
				ArgsUsage: "[value ...]",
				Action:    bstCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "insert",
						Usage: "comma separated values to insert",
					},
				),
			},
			{
				Name:      "stack",
				Usage:     "push values onto a stack and print them in pop order",
				ArgsUsage: "[value ...]",
				Action:    stackCommand,
				Flags:     commonFlags(),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "file",
			Usage: "read values from this file instead of the arguments",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
}

func configureLogging(cmd *cli.Command) *logrus.Entry {
	if cmd.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return logrus.WithFields(logrus.Fields{"command": cmd.Name})
}
