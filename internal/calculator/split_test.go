package calculator

import (
	"math"
	"testing"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name             string
		total            float64
		participantCount int
		wantErr          bool
		wantShare        float64
	}{
		{
			name:             "two people split evenly",
			total:            33.0,
			participantCount: 2,
			wantShare:        16.5,
		},
		{
			name:             "three people, repeating share",
			total:            10.0,
			participantCount: 3,
			wantShare:        3.3333,
		},
		{
			name:             "nobody enrolled yields zero share",
			total:            42.0,
			participantCount: 0,
			wantShare:        0,
		},
		{
			name:             "zero total",
			total:            0,
			participantCount: 4,
			wantShare:        0,
		},
		{
			name:             "negative total should error",
			total:            -1,
			participantCount: 2,
			wantErr:          true,
		},
		{
			name:             "negative participant count should error",
			total:            10,
			participantCount: -1,
			wantErr:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := SplitEvenly(tt.total, tt.participantCount)
			if (err != nil) != tt.wantErr {
				t.Errorf("SplitEvenly() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if math.Abs(split.Share-tt.wantShare) > 0.001 {
				t.Errorf("share = %v, want %v", split.Share, tt.wantShare)
			}
			if split.ParticipantCount != tt.participantCount {
				t.Errorf("participant count = %d, want %d", split.ParticipantCount, tt.participantCount)
			}
			if split.Total != tt.total {
				t.Errorf("total = %v, want %v", split.Total, tt.total)
			}
		})
	}
}
