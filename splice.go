package slidekit

import (
	"fmt"
	"sort"
)

// splice is a single byte-range replacement within a part.
// An insert is a replacement with start == end.
type splice struct {
	start int
	end   int
	data  []byte
}

// splicePlan collects edits against one part and applies them in a single
// pass. Either every edit applies or the source bytes are left untouched,
// which is what makes multi-shape operations atomic from the caller's
// perspective.
type splicePlan struct {
	edits []splice
}

// replace queues a replacement of src[start:end] with data.
func (p *splicePlan) replace(start, end int, data []byte) {
	p.edits = append(p.edits, splice{start: start, end: end, data: data})
}

// insert queues an insertion of data at pos.
func (p *splicePlan) insert(pos int, data []byte) {
	p.edits = append(p.edits, splice{start: pos, end: pos, data: data})
}

// apply validates the plan against src and returns the edited bytes.
// Edits must not overlap; they may be queued in any order.
func (p *splicePlan) apply(src []byte) ([]byte, error) {
	if len(p.edits) == 0 {
		return src, nil
	}

	edits := make([]splice, len(p.edits))
	copy(edits, p.edits)
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start < edits[j].start
		}
		return edits[i].end < edits[j].end
	})

	grow := 0
	prevEnd := 0
	for i, e := range edits {
		if e.start < 0 || e.end < e.start || e.end > len(src) {
			return nil, fmt.Errorf("splice %d out of bounds: [%d,%d) in %d bytes", i, e.start, e.end, len(src))
		}
		if e.start < prevEnd {
			return nil, fmt.Errorf("splice %d overlaps previous edit at offset %d", i, e.start)
		}
		prevEnd = e.end
		grow += len(e.data) - (e.end - e.start)
	}

	out := make([]byte, 0, len(src)+grow)
	pos := 0
	for _, e := range edits {
		out = append(out, src[pos:e.start]...)
		out = append(out, e.data...)
		pos = e.end
	}
	out = append(out, src[pos:]...)
	return out, nil
}
