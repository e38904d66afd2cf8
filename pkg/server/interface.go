/*
Package server implements msgpack IPC for word search over stdin/stdout.

Clients write a stream of msgpack maps to the server's stdin and read one
msgpack map per request from its stdout. There is no framing: each value is
self-delimiting. Once started the server writes

	{"status": "ready"}

and then answers requests in order until stdin closes or the context is
cancelled.

# Search

A search request carries the query, an optional limit, the fuzzy flag and an
optional edit distance:

	{"id": "req_001", "q": "ca", "l": 5}
	{"id": "req_002", "q": "cta", "f": true, "d": 1}

The response lists the matches in relevance order with the strategy label and
the time spent searching in microseconds:

	{"id": "req_001", "m": ["cab", "car", "cat"], "c": 3, "tw": 14, "st": "prefix", "t": 12}

Omitted limit and distance fall back to the [server] and [search] defaults of
the active config. Limits above server.max_limit are clamped.

# Actions

Requests with an "action" key manage the running server instead of searching:

	{"id": "info_001", "action": "info"}
	{"id": "cfg_001", "action": "config", "max_limit": 50}

"info" reports vocabulary size and the active limits. "config" adjusts the
server limits, persisting them to the config file when one is in use.

# Errors

Malformed requests get an error message with an HTTP-style code:

	{"id": "req_003", "e": "Query parameter is required", "c": 400}
*/
package server

// Request is the union of every message a client may send. Action selects
// the operation; an empty Action is a search.
type Request struct {
	ID          string `msgpack:"id"`
	Action      string `msgpack:"action,omitempty"`
	Query       string `msgpack:"q"`
	Limit       *int   `msgpack:"l,omitempty"`
	Fuzzy       bool   `msgpack:"f,omitempty"`
	MaxDistance *int   `msgpack:"d,omitempty"`

	// config action
	MaxLimit     *int `msgpack:"max_limit,omitempty"`
	DefaultLimit *int `msgpack:"default_limit,omitempty"`
	MaxQueryLen  *int `msgpack:"max_query_len,omitempty"`
}

// SearchResponse answers a search request.
type SearchResponse struct {
	ID         string   `msgpack:"id"`
	Matches    []string `msgpack:"m"`
	Count      int      `msgpack:"c"`
	TotalWords int      `msgpack:"tw"`
	Strategy   string   `msgpack:"st"`
	TimeTaken  int64    `msgpack:"t"`
}

// InfoResponse answers the info and config actions.
type InfoResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	TotalWords   int    `msgpack:"total_words"`
	Index        string `msgpack:"index"`
	MaxLimit     int    `msgpack:"max_limit"`
	DefaultLimit int    `msgpack:"default_limit"`
	MaxQueryLen  int    `msgpack:"max_query_len"`
}

// StatusMessage is written once when the server starts.
type StatusMessage struct {
	Status string `msgpack:"status"`
}

// SearchError holds basic error information for failed requests.
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
