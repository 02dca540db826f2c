package types

// ConversionStatus is the outcome of one input/output conversion.
type ConversionStatus string

const (
	StatusSaved    ConversionStatus = "saved"
	StatusNotFound ConversionStatus = "not_found"
	StatusFailed   ConversionStatus = "failed"
	StatusSkipped  ConversionStatus = "skipped" // not attempted after an earlier failure
)

// ConversionResult records what happened to one conversion during a run.
type ConversionResult struct {
	Name    string           `json:"name"`
	Input   string           `json:"input"`
	Output  string           `json:"output"`
	Status  ConversionStatus `json:"status"`
	Records int              `json:"records"`
	Err     error            `json:"-"`
}

// RunReport lists the conversion results of a run in execution order.
type RunReport struct {
	Results []ConversionResult `json:"results"`
}

// Failed reports whether any conversion failed.
func (r *RunReport) Failed() bool {
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Result returns the result for the named conversion.
func (r *RunReport) Result(name string) (ConversionResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return ConversionResult{}, false
}
