package search

import "fmt"

// Strategy names the retrieval methods that produced an Outcome.
type Strategy int

const (
	// StrategyPrefix means only the prefix index contributed.
	StrategyPrefix Strategy = iota
	// StrategyFuzzy means fuzzy search was requested explicitly.
	StrategyFuzzy
	// StrategyPrefixFuzzy means prefix results were topped up by the typo pass.
	StrategyPrefixFuzzy
)

var strategyLabels = map[Strategy]string{
	StrategyPrefix:      "prefix",
	StrategyFuzzy:       "fuzzy",
	StrategyPrefixFuzzy: "prefix+fuzzy",
}

// String returns the wire label of s.
func (s Strategy) String() string {
	if label, ok := strategyLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler so JSON carries the label.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyLabels[s]; !ok {
		return nil, fmt.Errorf("unknown search strategy %d", int(s))
	}
	return []byte(s.String()), nil
}
