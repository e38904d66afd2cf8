// Package cli runs an interactive search loop for debugging queries in real time.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/request"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// FuzzyMarker at the start of a line switches that query to fuzzy mode.
const FuzzyMarker = "~"

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads queries line by line and prints the matches.
type InputHandler struct {
	engine *search.Engine
	live   *config.Live
	in     io.Reader
	out    *log.Logger
}

// NewInputHandler reads from in and prints results to out.
func NewInputHandler(engine *search.Engine, live *config.Live, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		engine: engine,
		live:   live,
		in:     in,
		out:    logger.NewWithWriter(out, ""),
	}
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("wordfind REPL")
	h.out.Printf("type a word and press Enter, prefix with %s for fuzzy mode (Ctrl+D to exit):", FuzzyMarker)

	reader := bufio.NewReader(h.in)
	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	fuzzyMode := strings.HasPrefix(line, FuzzyMarker)
	query := strings.TrimSpace(strings.TrimPrefix(line, FuzzyMarker))

	cfg := h.live.Load()
	limit := cfg.CLI.DefaultLimit
	params, err := request.Resolve(request.Params{Query: query, Limit: &limit, Fuzzy: fuzzyMode}, cfg, h.engine.Options().DefaultMaxDistance)
	if err != nil {
		h.out.Errorf("Invalid query %q: %v", query, err)
		return
	}

	start := time.Now()
	out := h.engine.Query(params.Query, params.Limit, params.Fuzzy, params.MaxDistance)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), query)

	if out.Count == 0 {
		h.out.Warnf("No matches for '%s' (%s)", query, out.Strategy)
		return
	}

	h.out.Printf("Found %d of %s words for '%s' [%s]:",
		out.Count, utils.FormatWithCommas(out.TotalWords), query, out.Strategy)
	for i, w := range out.Matches {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}
