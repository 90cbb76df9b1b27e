package maf

// Buckets holds every MAF line, grouped by tumour sample ID, in the order the
// lines were read.
type Buckets map[string][]string

func (b Buckets) Append(r Record) {
	b[r.Tumour] = append(b[r.Tumour], r.Line)
}

// Counts returns the number of lines held for each tumour sample.
func (b Buckets) Counts() map[string]int {
	out := make(map[string]int, len(b))
	for k, v := range b {
		out[k] = len(v)
	}

	return out
}

func (b Buckets) Records() int {
	n := 0
	for _, v := range b {
		n += len(v)
	}

	return n
}
