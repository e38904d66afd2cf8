package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordfind/internal/metrics"
	"github.com/bastiangx/wordfind/internal/request"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const transport = "ipc"

// Server handles msgpack IPC for word search
type Server struct {
	engine     *search.Engine
	live       *config.Live
	configPath string

	in      io.Reader
	decoder *msgpack.Decoder
	out     *bufio.Writer
	encoder *msgpack.Encoder
}

// NewServer creates a server reading requests from r and writing responses
// to w. configPath is where the config action persists changes; empty keeps
// them in memory only. If r is an io.Closer it is closed when Start's
// context is cancelled so the read loop can exit.
func NewServer(engine *search.Engine, live *config.Live, configPath string, r io.Reader, w io.Writer) *Server {
	out := bufio.NewWriter(w)
	return &Server{
		engine:     engine,
		live:       live,
		configPath: configPath,
		in:         r,
		decoder:    msgpack.NewDecoder(bufio.NewReader(r)),
		out:        out,
		encoder:    msgpack.NewEncoder(out),
	}
}

// Start writes the ready message and serves requests until the input ends
// or ctx is cancelled. A clean EOF returns nil.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting IPC server.")

	if err := s.send(StatusMessage{Status: "ready"}); err != nil {
		return err
	}

	type frame struct {
		raw msgpack.RawMessage
		err error
	}
	frames := make(chan frame)
	go func() {
		defer close(frames)
		for {
			raw, err := s.decoder.DecodeRaw()
			select {
			case frames <- frame{raw: raw, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("IPC server stopping: context done")
			// unblocks DecodeRaw; a plain io.Reader leaves the reader
			// goroutine parked until the process exits
			if c, ok := s.in.(io.Closer); ok {
				if err := c.Close(); err != nil {
					log.Debugf("Closing IPC input: %v", err)
				}
			}
			return nil
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			if f.err != nil {
				if errors.Is(f.err, io.EOF) {
					log.Debug("IPC input closed")
					return nil
				}
				log.Errorf("Reading request: %v", f.err)
				return fmt.Errorf("reading request: %w", f.err)
			}
			if err := s.handleRaw(f.raw); err != nil {
				return err
			}
		}
	}
}

// handleRaw decodes one msgpack value and dispatches it. Only write errors
// are returned; bad requests are answered in-band.
func (s *Server) handleRaw(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Debugf("Unmarshaling request: %v", err)
		return s.sendError("", "Invalid msgpack request", 400)
	}

	switch req.Action {
	case "", "search":
		return s.handleSearch(req)
	case "info":
		return s.send(s.info(req.ID))
	case "config":
		return s.handleConfig(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSearch(req Request) error {
	params, err := request.Resolve(request.Params{
		Query:       req.Query,
		Limit:       req.Limit,
		Fuzzy:       req.Fuzzy,
		MaxDistance: req.MaxDistance,
	}, s.live.Load(), s.engine.Options().DefaultMaxDistance)
	if err != nil {
		log.Debugf("Rejected request %q: %v", req.ID, err)
		return s.sendError(req.ID, err.Error(), 400)
	}

	start := time.Now()
	out := s.engine.Query(params.Query, params.Limit, params.Fuzzy, params.MaxDistance)
	elapsed := time.Since(start)

	return s.send(SearchResponse{
		ID:         req.ID,
		Matches:    out.Matches,
		Count:      out.Count,
		TotalWords: out.TotalWords,
		Strategy:   out.Strategy.String(),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleConfig(req Request) error {
	for _, v := range []*int{req.MaxLimit, req.DefaultLimit, req.MaxQueryLen} {
		if v != nil && *v < 1 {
			return s.sendError(req.ID, "config values must be positive", 400)
		}
	}

	next := *s.live.Load()
	if s.configPath != "" {
		if err := next.Update(s.configPath, req.MaxLimit, req.DefaultLimit, req.MaxQueryLen); err != nil {
			log.Errorf("Failed to save config: %v", err)
			return s.sendError(req.ID, "failed to save config", 500)
		}
	} else {
		next.Apply(req.MaxLimit, req.DefaultLimit, req.MaxQueryLen)
	}
	s.live.Store(&next)
	log.Debugf("Server limits updated: max_limit=%d default_limit=%d max_query_len=%d",
		next.Server.MaxLimit, next.Server.DefaultLimit, next.Server.MaxQueryLen)

	return s.send(s.info(req.ID))
}

func (s *Server) info(id string) InfoResponse {
	cfg := s.live.Load()
	return InfoResponse{
		ID:           id,
		Status:       "ok",
		TotalWords:   s.engine.TotalWords(),
		Index:        cfg.Search.Index,
		MaxLimit:     cfg.Server.MaxLimit,
		DefaultLimit: cfg.Server.DefaultLimit,
		MaxQueryLen:  cfg.Server.MaxQueryLen,
	}
}

func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	metrics.IncRequestError(transport)
	return s.send(SearchError{ID: id, Error: message, Code: code})
}
