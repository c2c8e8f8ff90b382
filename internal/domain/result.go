package domain

type FileStatus string

const (
	StatusOK     FileStatus = "ok"
	StatusFailed FileStatus = "failed"
)

// FileResult records the outcome of one file. Failures carry the error that
// stopped that file; they never abort the batch.
type FileResult struct {
	InputPath  string
	OutputPath string
	Status     FileStatus
	Err        error
}

// Report summarizes a batch run.
type Report struct {
	RunID     string
	Processed int
	Failed    int
	Results   []FileResult
}

// FailedResults returns the subset of results that did not process.
func (r *Report) FailedResults() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
