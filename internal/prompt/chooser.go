package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"reelname/internal/identify"
	"reelname/internal/logging"
	"reelname/internal/naming"
	"reelname/internal/services"
)

// Chooser selects exactly one candidate among several, or aborts the run.
type Chooser interface {
	Choose(candidates []identify.Candidate, originalName string) (identify.Candidate, error)
}

// Console prompts an interactive operator with a numbered candidate list.
// Selection is 1-based; empty input defaults to 1 and 0 aborts the whole run.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
	confirm bool
}

var _ Chooser = (*Console)(nil)

// NewConsole builds an interactive chooser. When confirm is true even
// single-result searches are prompted.
func NewConsole(in io.Reader, out io.Writer, logger *slog.Logger, confirm bool) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logging.NewComponentLogger(logger, "prompt"),
		confirm: confirm,
	}
}

// Choose presents the candidates and blocks until the operator answers.
// Invalid input re-prompts; selecting 0 returns an abort tagged with
// services.ErrAborted.
func (c *Console) Choose(candidates []identify.Candidate, originalName string) (identify.Candidate, error) {
	if len(candidates) == 0 {
		return identify.Candidate{}, errors.New("no candidates to choose from")
	}

	fmt.Fprintln(c.out, "Found results:")
	fmt.Fprintln(c.out, renderCandidates(candidates))

	if len(candidates) == 1 && !c.confirm {
		selection := candidates[0]
		c.logger.Info("single result found, auto-selecting",
			logging.String("original", originalName),
			logging.String("selection", naming.Format(selection)),
		)
		return selection, nil
	}

	errMsg := fmt.Sprintf("Value must be an integer between 0 and %d, inclusive.", len(candidates))
	for {
		fmt.Fprintf(c.out, "Which should I use for %q? 0 aborts. [1]: ", originalName)
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return identify.Candidate{}, fmt.Errorf("read selection: %w", err)
		}
		line = strings.TrimSpace(line)

		value := 1
		if line != "" {
			value, err = strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(c.out, errMsg)
				continue
			}
		}

		switch {
		case value == 0:
			return identify.Candidate{}, services.Wrap(services.ErrAborted, "choosing", "prompt", "operator selected 0", nil)
		case value < 0 || value > len(candidates):
			fmt.Fprintln(c.out, errMsg)
		default:
			selection := candidates[value-1]
			c.logger.Info("operator selected",
				logging.String("original", originalName),
				logging.String("selection", naming.Format(selection)),
			)
			return selection, nil
		}
	}
}

// First is the non-interactive chooser: it always takes the first candidate.
// Used when stdin is not a terminal.
type First struct {
	logger *slog.Logger
}

var _ Chooser = First{}

// NewFirst builds the batch chooser.
func NewFirst(logger *slog.Logger) First {
	return First{logger: logging.NewComponentLogger(logger, "prompt")}
}

func (f First) Choose(candidates []identify.Candidate, originalName string) (identify.Candidate, error) {
	if len(candidates) == 0 {
		return identify.Candidate{}, errors.New("no candidates to choose from")
	}
	selection := candidates[0]
	f.logger.Info("non-interactive run, selecting first result",
		logging.String("original", originalName),
		logging.String("selection", naming.Format(selection)),
		logging.Int("results", len(candidates)),
	)
	return selection, nil
}

func renderCandidates(candidates []identify.Candidate) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Result"})
	for n, candidate := range candidates {
		tw.AppendRow(table.Row{n + 1, naming.Format(candidate)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
