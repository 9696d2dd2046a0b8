package dataset

import "fmt"

// Inputs holds both indexed files of a scoring run.
type Inputs struct {
	GroundTruthPath string
	SubmissionPath  string
	truth           Index
	submissions     Index
	reconciliation  Reconciliation
}

// Open reads and indexes the ground-truth and submission files. The ground
// truth must contain at least one record; the submission may be empty.
func Open(groundTruthPath, submissionPath string) (*Inputs, error) {
	truthRecords, err := ReadJSONL(groundTruthPath, false)
	if err != nil {
		return nil, err
	}
	submissionRecords, err := ReadJSONL(submissionPath, true)
	if err != nil {
		return nil, err
	}
	truth, err := BuildIndex(truthRecords, groundTruthPath)
	if err != nil {
		return nil, err
	}
	submissions, err := BuildIndex(submissionRecords, submissionPath)
	if err != nil {
		return nil, err
	}
	return &Inputs{
		GroundTruthPath: groundTruthPath,
		SubmissionPath:  submissionPath,
		truth:           truth,
		submissions:     submissions,
		reconciliation:  Reconcile(truth, submissions),
	}, nil
}

// Reconciliation returns the uuid differences between the two files.
func (in *Inputs) Reconciliation() Reconciliation {
	return in.reconciliation
}

// GroundTruthCount returns the number of ground-truth entries.
func (in *Inputs) GroundTruthCount() int {
	return in.truth.Len()
}

// SubmissionCount returns the number of submission entries, extras included.
func (in *Inputs) SubmissionCount() int {
	return in.submissions.Len()
}

// Samples pairs every ground-truth entry with its submission in ground-truth
// order. Submissions for uuids outside the ground truth are never examined.
// All schema violations are collected before the call fails.
func (in *Inputs) Samples() ([]Sample, error) {
	var truthIssues, submissionIssues []Issue
	samples := make([]Sample, 0, in.truth.Len())
	for _, uuid := range in.truth.order {
		record, _ := in.truth.Get(uuid)
		truth, issues := decodeGroundTruth(record.Value)
		truthIssues = append(truthIssues, issues...)

		sample := Sample{Truth: truth}
		if raw, ok := in.submissions.Get(uuid); ok {
			if issues := ValidateSubmission(raw.Value); len(issues) > 0 {
				submissionIssues = append(submissionIssues, issues...)
				continue
			}
			sample.Submission = decodeSubmission(raw.Value)
		} else {
			sample.Submission = BlankSubmission(uuid)
			sample.Synthesized = true
		}
		samples = append(samples, sample)
	}
	if len(truthIssues) > 0 {
		return nil, &ValidationError{Source: fmt.Sprintf("ground truth %s", in.GroundTruthPath), Issues: truthIssues}
	}
	if len(submissionIssues) > 0 {
		return nil, &ValidationError{Source: fmt.Sprintf("submission %s", in.SubmissionPath), Issues: submissionIssues}
	}
	return samples, nil
}
