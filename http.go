package stackquery

import "net/http"

// ParseRequest parses the raw query of an incoming request into the table.
// It is the request-handler entry point: pair it with AcquireParams and
// ReleaseParams to keep hot handlers allocation-free. A nil request or an
// empty query leaves the table unchanged.
func (qp *QueryParams) ParseRequest(r *http.Request) {
	if r == nil || r.URL == nil || r.URL.RawQuery == "" {
		return
	}
	qp.parseQuery(r.URL.RawQuery)
}
