package stackquery

import "sync"

//------------------------------------------------------------------------------
// QueryParams Pool
//------------------------------------------------------------------------------

// paramsPool is a pool of reusable default-sized QueryParams tables.
// Reusing tables keeps request handlers allocation-free: the only allocation
// a pooled table ever performs is its own construction.
var paramsPool = sync.Pool{
	New: func() interface{} {
		return New()
	},
}

// AcquireParams retrieves a table from the pool or creates a new one if
// necessary. The returned table is guaranteed to be empty, with the default
// limits, and ready to parse.
//
// Returns:
//   - *QueryParams: An empty table with default capacities
func AcquireParams() *QueryParams {
	v := paramsPool.Get()

	qp, ok := v.(*QueryParams)
	if !ok || qp == nil {
		// If the pool returns something unexpected, fall back to a fresh table
		return New()
	}

	return qp
}

// ReleaseParams returns a table to the pool after resetting it, so the next
// AcquireParams hands out an empty table. Tables built with NewWithLimits are
// not pooled: mixing capacities in one pool would hand later callers a table
// with limits they did not ask for, so releasing a custom-sized table is a
// no-op and the table is left to the garbage collector.
//
// Parameters:
//   - qp: The table to return to the pool
func ReleaseParams(qp *QueryParams) {
	if qp == nil || !qp.hasDefaultLimits() {
		return
	}
	qp.Reset()
	paramsPool.Put(qp)
}
