package gallery

import (
	"strings"
)

// Token identifies one scheduled search. Only the latest token may fire.
type Token uint64

// Debouncer coalesces rapid queries so that only the last one is applied.
// The caller owns the clock: it schedules a query, waits for the delay, and
// fires the returned token.
type Debouncer struct {
	latest  Token
	pending string
	armed   bool
}

// Schedule records a query and returns its token, superseding earlier ones
func (d *Debouncer) Schedule(query string) Token {
	d.latest++
	d.pending = query
	d.armed = true
	return d.latest
}

// Fire returns the pending query if token is still the latest
func (d *Debouncer) Fire(token Token) (string, bool) {
	if !d.armed || token != d.latest {
		return "", false
	}
	return d.take()
}

// Flush returns the pending query regardless of token
func (d *Debouncer) Flush() (string, bool) {
	if !d.armed {
		return "", false
	}
	return d.take()
}

// Cancel drops the pending query
func (d *Debouncer) Cancel() {
	d.armed = false
	d.pending = ""
}

// Pending reports whether a query is waiting
func (d *Debouncer) Pending() bool {
	return d.armed
}

func (d *Debouncer) take() (string, bool) {
	q := d.pending
	d.Cancel()
	return q, true
}

// normalizeQuery trims a query. A blank result means "show all".
func normalizeQuery(query string) string {
	return strings.TrimSpace(query)
}
