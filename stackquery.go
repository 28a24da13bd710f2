// Package stackquery provides a fixed-capacity URL query string parser that
// performs no allocations while parsing. Parameter storage is sized once at
// construction; oversized keys and values are truncated and surplus
// parameters are dropped, never reported as errors.
package stackquery

import "strings"

// Default capacity limits, matching New().
const (
	// MaxQueryParams is the default maximum number of query parameters.
	MaxQueryParams = 16

	// MaxKeyLen is the default maximum key length in bytes.
	MaxKeyLen = 32

	// MaxValueLen is the default maximum value length in bytes.
	MaxValueLen = 128
)

// Param is a single key/value pair held in fixed-capacity storage.
type Param struct {
	key   StackString
	value StackString
}

// Key returns the decoded key as a zero-copy view into the slot's storage.
//
//go:inline
func (p *Param) Key() string {
	return p.key.String()
}

// Value returns the decoded value as a zero-copy view into the slot's storage.
//
//go:inline
func (p *Param) Value() string {
	return p.value.String()
}

// QueryParams is a fixed-capacity table of decoded query parameters. Slots
// [0, count) hold parameters in first-seen order; a parse pass fills slots
// until input or capacity runs out. The table is single-writer: parse and
// Reset must not race with anything, reads may run concurrently with each
// other once parsing is done.
type QueryParams struct {
	params      []Param
	count       int
	maxKeyLen   int
	maxValueLen int
}

// New returns an empty table with the default limits: MaxQueryParams
// parameters of MaxKeyLen-byte keys and MaxValueLen-byte values.
func New() *QueryParams {
	return NewWithLimits(MaxQueryParams, MaxKeyLen, MaxValueLen)
}

// NewWithLimits returns an empty table with caller-chosen capacities. All
// storage is allocated here; nothing grows afterwards. Non-positive limits
// are clamped to zero, yielding a table that stores nothing.
func NewWithLimits(maxParams, maxKeyLen, maxValueLen int) *QueryParams {
	if maxParams < 0 {
		maxParams = 0
	}
	if maxKeyLen < 0 {
		maxKeyLen = 0
	}
	if maxValueLen < 0 {
		maxValueLen = 0
	}
	qp := &QueryParams{
		params:      make([]Param, maxParams),
		maxKeyLen:   maxKeyLen,
		maxValueLen: maxValueLen,
	}
	for i := range qp.params {
		qp.params[i].key = newStackString(maxKeyLen)
		qp.params[i].value = newStackString(maxValueLen)
	}
	return qp
}

// ParseFromURL parses the query string of url into the table. It never fails:
// with no '?' present the table is left untouched, and every boundary
// condition degrades silently (see parsePair). Parsing appends to whatever the
// table already holds; call Reset first to reuse a table for a new request.
func (qp *QueryParams) ParseFromURL(url string) {
	q := strings.IndexByte(url, '?')
	if q < 0 {
		return
	}
	qp.parseQuery(url[q+1:])
}

// parseQuery splits query on '&' and fills slots in order, stopping once
// every slot is taken. The scan mirrors the span walk in decodeInto: byte
// indices only, no intermediate strings.
func (qp *QueryParams) parseQuery(query string) {
	start := 0
	for start < len(query) && qp.count < len(qp.params) {
		end := start
		for end < len(query) && query[end] != '&' {
			end++
		}
		qp.parsePair(query[start:end])
		start = end + 1
	}
}

// parsePair decodes one raw pair span into the next free slot. Empty spans
// (from "&&" or a trailing '&') and pairs with an empty key (as in "=value")
// are skipped without consuming a slot. A span without '=' becomes a key-only
// parameter whose value is the empty string.
func (qp *QueryParams) parsePair(pair string) {
	if pair == "" {
		return
	}
	rawKey, rawValue := pair, ""
	if eq := strings.IndexByte(pair, '='); eq >= 0 {
		if eq == 0 {
			return
		}
		rawKey, rawValue = pair[:eq], pair[eq+1:]
	}
	slot := &qp.params[qp.count]
	slot.key.reset()
	slot.value.reset()
	decodeInto(&slot.key, rawKey)
	decodeInto(&slot.value, rawValue)
	qp.count++
}

// Get returns the value of the first parameter whose key equals key exactly,
// byte for byte. Later duplicates occupy slots but are shadowed by the first.
// The returned string is a view into the table's storage and is valid until
// the table is reset, re-parsed or released.
func (qp *QueryParams) Get(key string) (string, bool) {
	for i := 0; i < qp.count; i++ {
		if qp.params[i].Key() == key {
			return qp.params[i].Value(), true
		}
	}
	return "", false
}

// Len returns the number of parameters currently stored.
//
//go:inline
func (qp *QueryParams) Len() int {
	return qp.count
}

// IsEmpty reports whether the table holds no parameters.
//
//go:inline
func (qp *QueryParams) IsEmpty() bool {
	return qp.count == 0
}

// Each calls fn for every stored parameter in parse order, stopping early if
// fn returns false. Each can be called any number of times; every call is an
// independent traversal of the same slots.
func (qp *QueryParams) Each(fn func(key, value string) bool) {
	for i := 0; i < qp.count; i++ {
		if !fn(qp.params[i].Key(), qp.params[i].Value()) {
			return
		}
	}
}

// At returns the parameter at position i in parse order, or two empty strings
// if i is out of range.
func (qp *QueryParams) At(i int) (string, string) {
	if i < 0 || i >= qp.count {
		return "", ""
	}
	return qp.params[i].Key(), qp.params[i].Value()
}

// Reset empties the table for reuse while keeping all storage, so a reused
// table parses without allocating.
func (qp *QueryParams) Reset() {
	for i := 0; i < qp.count; i++ {
		qp.params[i].key.reset()
		qp.params[i].value.reset()
	}
	qp.count = 0
}

// hasDefaultLimits reports whether the table was built with New's capacities.
func (qp *QueryParams) hasDefaultLimits() bool {
	return len(qp.params) == MaxQueryParams &&
		qp.maxKeyLen == MaxKeyLen &&
		qp.maxValueLen == MaxValueLen
}
