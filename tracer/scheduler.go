package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling
// algorithms.
type BlockScheduler interface {
	// Split the frame into contiguous row bands, one per tracer in the
	// input list. The returned assignments always sum to frameH: bands
	// cover every row exactly once with no overlap.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler statically splits frame rows proportionally to each
// tracer's speed estimate. With a homogeneous pool this degenerates to an
// even split. Rows lost to flooring are appended to the first band so no
// trailing row is ever left unassigned.
type naiveScheduler struct {
}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return &naiveScheduler{}
}

func (sch *naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	blockAssignment := make([]uint32, len(tracers))

	var total float64
	for _, tr := range tracers {
		total += float64(tr.Speed())
	}
	scaler := float64(frameH) / total

	remaining := frameH
	for idx, tr := range tracers {
		rows := uint32(math.Floor(float64(tr.Speed()) * scaler))
		if rows > remaining {
			rows = remaining
		}
		blockAssignment[idx] = rows
		remaining -= rows
	}

	// In case rows don't add up to the frame height append the missing ones
	// to the first tracer.
	blockAssignment[0] += remaining

	return blockAssignment
}
