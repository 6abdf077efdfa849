package media

import (
	"testing"

	"github.com/oxidamotion/Tikauto/internal/model"
)

func TestReconcileDurations(t *testing.T) {
	tests := []struct {
		name         string
		top          float64
		bottom       float64
		wantLoops    int
		wantDuration float64
		wantIdentity bool
	}{
		{
			name:         "bottom shorter, exact multiple",
			top:          120,
			bottom:       40,
			wantLoops:    2, // three full plays
			wantDuration: 120,
		},
		{
			name:         "bottom shorter, partial final repeat",
			top:          100,
			bottom:       60,
			wantLoops:    1,
			wantDuration: 100,
		},
		{
			name:         "bottom equal to top is unchanged",
			top:          90,
			bottom:       90,
			wantIdentity: true,
			wantDuration: 90,
		},
		{
			name:         "bottom longer than top is unchanged",
			top:          60,
			bottom:       200,
			wantIdentity: true,
			wantDuration: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ReconcileDurations(tt.top, tt.bottom)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if plan.IsIdentity() != tt.wantIdentity {
				t.Errorf("IsIdentity() = %v, expected %v", plan.IsIdentity(), tt.wantIdentity)
			}
			if !tt.wantIdentity && plan.Loops != tt.wantLoops {
				t.Errorf("Loops = %d, expected %d", plan.Loops, tt.wantLoops)
			}
			if got := plan.BottomDuration(tt.bottom); got != tt.wantDuration {
				t.Errorf("BottomDuration(%v) = %v, expected %v", tt.bottom, got, tt.wantDuration)
			}
		})
	}
}

func TestReconcileDurations_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		top    float64
		bottom float64
	}{
		{"zero top", 0, 40},
		{"zero bottom", 120, 0},
		{"negative bottom", 120, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconcileDurations(tt.top, tt.bottom)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			kind, found := model.FailureKindOf(err)
			if !found || kind != model.FailureDurationAdjust {
				t.Errorf("expected duration-adjust failure kind, got %v (found=%v)", kind, found)
			}
		})
	}
}
