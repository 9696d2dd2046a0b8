package dataset

import "sort"

// Reconciliation lists uuids that differ between ground truth and submission.
type Reconciliation struct {
	// Extra uuids appear only in the submission and are ignored.
	Extra []string
	// Missing uuids appear only in the ground truth and are scored as blank
	// submissions.
	Missing []string
}

// Clean reports whether both files cover the same uuids.
func (r Reconciliation) Clean() bool {
	return len(r.Extra) == 0 && len(r.Missing) == 0
}

// Reconcile compares ground-truth and submission uuids.
func Reconcile(truth, submissions Index) Reconciliation {
	var result Reconciliation
	for _, uuid := range submissions.order {
		if _, ok := truth.byUUID[uuid]; !ok {
			result.Extra = append(result.Extra, uuid)
		}
	}
	for _, uuid := range truth.order {
		if _, ok := submissions.byUUID[uuid]; !ok {
			result.Missing = append(result.Missing, uuid)
		}
	}
	sort.Strings(result.Extra)
	sort.Strings(result.Missing)
	return result
}
