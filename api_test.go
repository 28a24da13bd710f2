package stackquery_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/stackquery"
)

func TestPublicSurface(t *testing.T) {
	qp := stackquery.New()
	qp.ParseFromURL("https://example.com/path?name=John+Doe&city=New%20York&discount=50%25")

	require.Equal(t, 3, qp.Len())
	assert.False(t, qp.IsEmpty())

	name, ok := qp.Get("name")
	require.True(t, ok)
	assert.Equal(t, "John Doe", name)

	city, ok := qp.Get("city")
	require.True(t, ok)
	assert.Equal(t, "New York", city)

	discount, ok := qp.Get("discount")
	require.True(t, ok)
	assert.Equal(t, "50%", discount)

	_, ok = qp.Get("Name") // lookups are case-sensitive
	assert.False(t, ok)
}

func TestPoolRoundTrip(t *testing.T) {
	qp := stackquery.AcquireParams()
	qp.ParseFromURL("?session=abc123")

	v, ok := qp.Get("session")
	require.True(t, ok)
	assert.Equal(t, "abc123", v)

	stackquery.ReleaseParams(qp)

	fresh := stackquery.AcquireParams()
	defer stackquery.ReleaseParams(fresh)

	assert.True(t, fresh.IsEmpty(), "acquired table must be empty")
	_, ok = fresh.Get("session")
	assert.False(t, ok)
}

func TestReleaseCustomSizedTableIsNoOp(t *testing.T) {
	custom := stackquery.NewWithLimits(2, 8, 8)
	custom.ParseFromURL("?a=1")

	// Must not panic or poison the default pool.
	stackquery.ReleaseParams(custom)
	stackquery.ReleaseParams(nil)

	qp := stackquery.AcquireParams()
	defer stackquery.ReleaseParams(qp)

	assert.True(t, qp.IsEmpty())
}

func TestHandlerUsage(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?sort=price&dir=asc", nil)

	qp := stackquery.AcquireParams()
	defer stackquery.ReleaseParams(qp)

	qp.ParseRequest(req)

	sort, ok := qp.Get("sort")
	require.True(t, ok)
	assert.Equal(t, "price", sort)

	var pairs []string
	qp.Each(func(k, v string) bool {
		pairs = append(pairs, k+"="+v)
		return true
	})
	assert.Equal(t, []string{"sort=price", "dir=asc"}, pairs)
}
