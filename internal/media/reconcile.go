package media

import (
	"fmt"
	"math"

	"github.com/oxidamotion/Tikauto/internal/model"
)

// LoopPlan describes how the bottom clip is looped so its duration matches
// the top clip. Loops is the number of extra full plays (ffmpeg -stream_loop
// semantics: 0 means play once); Limit is the input read limit in seconds,
// trimming the final partial repeat, with 0 meaning unbounded. A zero plan
// leaves the bottom clip unchanged.
type LoopPlan struct {
	Loops int
	Limit float64
}

// ReconcileDurations plans the bottom clip adjustment for a (top, bottom)
// duration pair. If bottom is shorter than top, the plan repeats bottom's
// content until it covers top's duration exactly; otherwise the plan is the
// identity. The top clip is never modified.
func ReconcileDurations(top, bottom float64) (LoopPlan, error) {
	if top <= 0 || bottom <= 0 {
		return LoopPlan{}, model.NewStageError(model.FailureDurationAdjust,
			fmt.Errorf("non-positive clip duration (top=%.2fs, bottom=%.2fs)", top, bottom))
	}

	if bottom >= top {
		return LoopPlan{}, nil
	}

	return LoopPlan{
		Loops: int(math.Ceil(top/bottom)) - 1,
		Limit: top,
	}, nil
}

// BottomDuration returns the bottom clip's duration after the plan is
// applied to a clip of the given original duration.
func (p LoopPlan) BottomDuration(bottom float64) float64 {
	if p.Limit > 0 {
		return p.Limit
	}
	return bottom
}

// IsIdentity reports whether the plan leaves the bottom clip unchanged.
func (p LoopPlan) IsIdentity() bool {
	return p.Loops == 0 && p.Limit == 0
}
