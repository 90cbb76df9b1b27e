package maf

import "sort"

// Index maps each patient to the deduplicated set of tumour samples seen for
// it, and tracks the distinct patients and tumours overall.
type Index struct {
	mapping map[string]map[string]struct{}
	tumours map[string]struct{}
}

func NewIndex() *Index {
	return &Index{
		mapping: make(map[string]map[string]struct{}),
		tumours: make(map[string]struct{}),
	}
}

func (idx *Index) Add(patient, tumour string) {
	set, exists := idx.mapping[patient]
	if !exists {
		set = make(map[string]struct{})
		idx.mapping[patient] = set
	}
	set[tumour] = struct{}{}
	idx.tumours[tumour] = struct{}{}
}

func (idx *Index) PatientCount() int { return len(idx.mapping) }
func (idx *Index) TumourCount() int  { return len(idx.tumours) }

// Patients returns the distinct patient IDs, sorted.
func (idx *Index) Patients() []string {
	return sortedKeys(idx.mapping)
}

// Tumours returns the distinct tumour sample IDs, sorted.
func (idx *Index) Tumours() []string {
	out := make([]string, 0, len(idx.tumours))
	for k := range idx.tumours {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// TumoursFor returns the distinct tumour samples of one patient, sorted.
func (idx *Index) TumoursFor(patient string) []string {
	out := make([]string, 0, len(idx.mapping[patient]))
	for k := range idx.mapping[patient] {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Pairs counts (patient, tumour) combinations, which is the number of
// per-sample files that will be produced.
func (idx *Index) Pairs() int {
	n := 0
	for _, set := range idx.mapping {
		n += len(set)
	}

	return n
}

// MultiSampleApprox is the historical "multiple samples found for an
// individual patient" figure: tumours minus patients. It equals the number of
// surplus samples, not the number of patients having more than one.
func (idx *Index) MultiSampleApprox() int {
	return idx.TumourCount() - idx.PatientCount()
}

// MultiSamplePatients counts patients with more than one tumour sample.
func (idx *Index) MultiSamplePatients() int {
	n := 0
	for _, set := range idx.mapping {
		if len(set) > 1 {
			n++
		}
	}

	return n
}

func sortedKeys(m map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
