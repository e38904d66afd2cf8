/*
Package search answers autocomplete queries against a cached dictionary.

An Engine picks between prefix retrieval and fuzzy edit-distance matching per
query, blends the two when prefix results run short, enforces the result
limit and labels the Outcome with the strategy used.

	engine := search.NewEngine(cache, search.DefaultOptions())
	out := engine.Query("ca", 10, false, 2)
	// out.Matches, out.Count, out.TotalWords, out.Strategy

Query never fails. Validation of raw request parameters belongs to the
transports in pkg/httpapi and pkg/server.
*/
package search

import (
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/fuzzy"
	"github.com/charmbracelet/log"
)

// Options tunes the blend between prefix and fuzzy results.
type Options struct {
	// DefaultMaxDistance is used by callers that do not pass a distance.
	DefaultMaxDistance int
	// SupplementMinLength is the shortest query that receives the typo pass.
	SupplementMinLength int
	// SupplementMaxDistance is the edit distance of the typo pass.
	SupplementMaxDistance int
}

// DefaultOptions returns the stock blend settings.
func DefaultOptions() Options {
	return Options{
		DefaultMaxDistance:    fuzzy.DefaultMaxDistance,
		SupplementMinLength:   3,
		SupplementMaxDistance: fuzzy.SupplementMaxDistance,
	}
}

// Outcome is the answer to one query.
type Outcome struct {
	Matches    []string
	Count      int
	TotalWords int
	Strategy   Strategy
}

// Recorder receives per-query observations. A nil Recorder is allowed.
type Recorder interface {
	ObserveQuery(strategy string, count int, took time.Duration)
	SetVocabularySize(n int)
}

// Snapshotter yields the immutable dictionary state. *dictionary.Cache
// satisfies it.
type Snapshotter interface {
	Get() *dictionary.Snapshot
}

// Engine is safe for concurrent use once constructed.
type Engine struct {
	cache    Snapshotter
	opts     Options
	recorder Recorder
}

// NewEngine returns an engine reading from cache.
func NewEngine(cache Snapshotter, opts Options) *Engine {
	return &Engine{cache: cache, opts: opts}
}

// WithRecorder attaches a metrics recorder and returns e.
func (e *Engine) WithRecorder(r Recorder) *Engine {
	e.recorder = r
	return e
}

// Options returns the blend settings in use.
func (e *Engine) Options() Options {
	return e.opts
}

// TotalWords returns the vocabulary size, building the cache if needed.
func (e *Engine) TotalWords() int {
	return e.cache.Get().TotalWords()
}

// Query runs one search. text is assumed non-blank; limit <= 0 yields no
// matches.
func (e *Engine) Query(text string, limit int, fuzzyRequested bool, maxDistance int) Outcome {
	start := time.Now()
	snap := e.cache.Get()

	var out Outcome
	if fuzzyRequested {
		out = e.fuzzyOutcome(snap, text, limit, maxDistance)
	} else {
		out = e.prefixOutcome(snap, text, limit)
	}
	out.Count = len(out.Matches)
	out.TotalWords = snap.TotalWords()

	took := time.Since(start)
	log.Debug("query", "text", text, "limit", limit, "strategy", out.Strategy, "count", out.Count, "took", took)
	if e.recorder != nil {
		e.recorder.ObserveQuery(out.Strategy.String(), out.Count, took)
		e.recorder.SetVocabularySize(out.TotalWords)
	}
	return out
}

func (e *Engine) fuzzyOutcome(snap *dictionary.Snapshot, text string, limit, maxDistance int) Outcome {
	matches := snap.Matcher.Search(text, maxDistance)
	words := fuzzy.Words(matches[:clamp(limit, len(matches))])
	return Outcome{Matches: words, Strategy: StrategyFuzzy}
}

func (e *Engine) prefixOutcome(snap *dictionary.Snapshot, text string, limit int) Outcome {
	prefixed := snap.Index.SearchPrefix(text)
	words := append(make([]string, 0, clamp(limit, len(prefixed))), prefixed[:clamp(limit, len(prefixed))]...)

	if len(words) >= limit || utf8.RuneCountInString(text) < e.opts.SupplementMinLength {
		return Outcome{Matches: words, Strategy: StrategyPrefix}
	}

	typos := snap.Matcher.Search(text, e.opts.SupplementMaxDistance)
	blended := appendMissing(words, fuzzy.Words(typos), limit)

	if len(blended) > len(words) {
		return Outcome{Matches: blended, Strategy: StrategyPrefixFuzzy}
	}
	return Outcome{Matches: blended, Strategy: StrategyPrefix}
}

// appendMissing appends words from src that are not already in dst until
// dst holds limit words. Repeats within src are kept.
func appendMissing(dst, src []string, limit int) []string {
	present := make(map[string]struct{}, len(dst))
	for _, w := range dst {
		present[w] = struct{}{}
	}
	for _, w := range src {
		if len(dst) >= limit {
			break
		}
		if _, ok := present[w]; ok {
			continue
		}
		dst = append(dst, w)
	}
	return dst
}

func clamp(limit, n int) int {
	if limit < 0 {
		return 0
	}
	if n < limit {
		return n
	}
	return limit
}
