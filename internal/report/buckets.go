package report

import "fmt"

// Bucket classifies one student-meeting pairing by attendance duration.
type Bucket int

const (
	// BucketNone means the duration fell below the red threshold.
	BucketNone Bucket = iota
	BucketRed
	BucketYellow
	BucketGreen
)

func (b Bucket) String() string {
	switch b {
	case BucketRed:
		return "red"
	case BucketYellow:
		return "yellow"
	case BucketGreen:
		return "green"
	default:
		return "none"
	}
}

// Thresholds are the bucket boundaries in minutes. They must be strictly
// increasing and non-negative.
type Thresholds struct {
	Red    int
	Yellow int
	Green  int
}

// DefaultThresholds returns the stock 0/15/30 minute boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Red: 0, Yellow: 15, Green: 30}
}

// Validate rejects threshold sets that are negative or not strictly
// increasing.
func (t Thresholds) Validate() error {
	if t.Red < 0 {
		return fmt.Errorf("red threshold must be non-negative, got %d", t.Red)
	}
	if t.Yellow <= t.Red {
		return fmt.Errorf("yellow threshold (%d) must be greater than red (%d)", t.Yellow, t.Red)
	}
	if t.Green <= t.Yellow {
		return fmt.Errorf("green threshold (%d) must be greater than yellow (%d)", t.Green, t.Yellow)
	}
	return nil
}

// Classify returns the highest bucket whose threshold the duration meets or
// exceeds. Durations below the red threshold get no classification.
func (t Thresholds) Classify(minutes int) Bucket {
	switch {
	case minutes >= t.Green:
		return BucketGreen
	case minutes >= t.Yellow:
		return BucketYellow
	case minutes >= t.Red:
		return BucketRed
	default:
		return BucketNone
	}
}
