package generator

// Result is the outcome of a single operation.
type Result struct {
	Description string
	Path        string // Empty for operations that don't produce a file
	Bytes       int
	Err         error
}

// OK reports whether the operation completed.
func (r Result) OK() bool {
	return r.Err == nil
}

func newResult(op Operation) Result {
	result := Result{Description: op.Description()}
	if fop, ok := op.(FileOperation); ok {
		result.Path = fop.TargetPath()
		result.Bytes = fop.Size()
	}
	return result
}

// Report lists the results of an Execute call in execution order.
// Operations after a failure never run and have no result.
type Report struct {
	Results []Result
}

func (r *Report) add(result Result, opts ExecuteOptions) {
	r.Results = append(r.Results, result)
	if opts.OnResult != nil {
		opts.OnResult(result)
	}
}

// Written returns the paths of files that were written successfully.
func (r *Report) Written() []string {
	var paths []string
	for _, res := range r.Results {
		if res.OK() && res.Path != "" {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// TotalBytes sums the content size of every successful write.
func (r *Report) TotalBytes() int64 {
	var total int64
	for _, res := range r.Results {
		if res.OK() {
			total += int64(res.Bytes)
		}
	}
	return total
}

// Failure returns the failed result, if any.
func (r *Report) Failure() (Result, bool) {
	for _, res := range r.Results {
		if res.Err != nil {
			return res, true
		}
	}
	return Result{}, false
}
