/*
Package server implements msgpack IPC for wordcrack operations.

The server reads structured requests from stdin and writes responses to
stdout using binary msgpack encoding, the same process-communication
model editors use to talk to completion engines. Each request carries
an ID, an operation name, and the text to operate on; responses echo
the ID and include microsecond timing.

Supported operations:

	segment   split unspaced text into maximum-likelihood words
	shift     recover plaintext from a shift cipher
	perm      recover plaintext from a general permutation cipher
	rot13     rotate letters by 13 places
	generate  sample random text from the trained n-gram model
	health    liveness check

A segment request and its response:

	{"id": "req_001", "op": "segment", "t": "itwasthebest"}
	{"id": "req_001", "w": ["it", "was", "the", "best"], "p": 0.0001, "tt": 95}

Error responses carry a message and a status code:

	{"id": "req_001", "e": "missing 't' parameter", "c": 400}
*/
package server

// Request is an incoming IPC request.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Text   string `msgpack:"t,omitempty"`
	Length int    `msgpack:"l,omitempty"`
}

// StatusResponse reports server state changes, such as readiness.
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// SegmentResponse answers a segment request.
type SegmentResponse struct {
	ID          string   `msgpack:"id"`
	Words       []string `msgpack:"w"`
	Probability float64  `msgpack:"p"`
	TimeTaken   int64    `msgpack:"tt"`
}

// DecodeResponse answers shift, perm and rot13 requests. Mapping is
// only present for perm, where it holds the recovered cipher-to-plain
// letter assignments.
type DecodeResponse struct {
	ID        string            `msgpack:"id"`
	Plaintext string            `msgpack:"pt"`
	Mapping   map[string]string `msgpack:"m,omitempty"`
	TimeTaken int64             `msgpack:"tt"`
}

// GenerateResponse answers a generate request.
type GenerateResponse struct {
	ID        string `msgpack:"id"`
	Text      string `msgpack:"text"`
	TimeTaken int64  `msgpack:"tt"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
