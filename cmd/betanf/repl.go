package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/betanf/betanf/pkg/church"
	"github.com/betanf/betanf/pkg/lambda"
)

// replMaxSteps caps normalization in the REPL so that a diverging term
// cannot hang the session. The core driver itself imposes no bound.
const replMaxSteps = 100000

func runREPL(cfg Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("betanf repl: enter a lambda term, :list for the catalogue, :quit to exit")

	for {
		input, err := line.Prompt("> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":q":
			return nil
		case ":list":
			fmt.Println(strings.Join(church.Names(), " "))
			continue
		}

		term, err := lambda.Parse(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			continue
		}
		term = church.Expand(term)

		result, stats := lambda.Normalize(term, lambda.WithMaxSteps(replMaxSteps))
		if stats.Steps >= replMaxSteps {
			fmt.Fprintf(os.Stderr, "stopped after %d steps without reaching a normal form\n", stats.Steps)
		}
		fmt.Println(result.Render())

		slog.Debug("repl normalization",
			"steps", stats.Steps,
			"ops", stats.TotalOps(),
		)
	}
}
