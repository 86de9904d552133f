package classifier

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Result is the final classification mapping from cracked credential to the
// table source that cracked it. Entries enumerate deterministically: in table
// processing order, then in lexical credential order within a table.
type Result struct {
	matches  *orderedmap.OrderedMap[string, string]
	bySource *orderedmap.OrderedMap[string, int]
}

func newResult() *Result {
	return &Result{
		matches:  orderedmap.NewOrderedMap[string, string](),
		bySource: orderedmap.NewOrderedMap[string, int](),
	}
}

// Len returns the number of classified credentials.
func (r *Result) Len() int {
	return r.matches.Len()
}

// Source returns the table source identifier a credential was attributed to.
func (r *Result) Source(credential string) (string, bool) {
	return r.matches.Get(credential)
}

// Each calls fn for every (credential, source) pair in stable enumeration order.
func (r *Result) Each(fn func(credential, source string)) {
	for el := r.matches.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// BySource calls fn with the match count per table source, in processing
// order. Sources that were scanned but matched nothing are omitted.
func (r *Result) BySource(fn func(source string, count int)) {
	for el := r.bySource.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Aggregator folds per-table partial matches into the final Result.
//
// Tie-break policy: sources must be folded in the fixed processing order, and
// the FIRST source that matches a credential wins. Later matches for an
// already-classified credential are discarded.
type Aggregator struct {
	result *Result
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{result: newResult()}
}

// Fold merges one source's partial matches. Fold must be called in the fixed
// table processing order; it is the single writer to the result.
func (a *Aggregator) Fold(scan *ScanResult) {
	claimed := 0
	for _, credential := range scan.Matches {
		if _, exists := a.result.matches.Get(credential); exists {
			// An earlier source already cracked this credential.
			continue
		}
		a.result.matches.Set(credential, scan.Source.Name)
		claimed++
	}
	if claimed > 0 {
		a.result.bySource.Set(scan.Source.Name, claimed)
	}
}

// Result returns the accumulated classification result. The result is valid
// at any point during folding, so an aborted run still yields a reportable
// partial result.
func (a *Aggregator) Result() *Result {
	return a.result
}
