package report

import "testing"

func TestClassifyDefaults(t *testing.T) {
	thresholds := DefaultThresholds()
	tests := []struct {
		minutes int
		want    Bucket
	}{
		{0, BucketRed},
		{5, BucketRed},
		{14, BucketRed},
		{15, BucketYellow},
		{29, BucketYellow},
		{30, BucketGreen},
		{90, BucketGreen},
	}
	for _, tt := range tests {
		if got := thresholds.Classify(tt.minutes); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.minutes, got, tt.want)
		}
	}
}

func TestClassifyBelowRedIsUnbucketed(t *testing.T) {
	thresholds := Thresholds{Red: 5, Yellow: 20, Green: 30}
	if got := thresholds.Classify(4); got != BucketNone {
		t.Errorf("Classify(4) = %v, want none", got)
	}
	if got := thresholds.Classify(5); got != BucketRed {
		t.Errorf("Classify(5) = %v, want red", got)
	}
}

func TestThresholdsValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Thresholds
		wantErr bool
	}{
		{"defaults", DefaultThresholds(), false},
		{"custom", Thresholds{Red: 5, Yellow: 20, Green: 30}, false},
		{"negative red", Thresholds{Red: -1, Yellow: 15, Green: 30}, true},
		{"yellow equals red", Thresholds{Red: 15, Yellow: 15, Green: 30}, true},
		{"green below yellow", Thresholds{Red: 0, Yellow: 30, Green: 15}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBucketString(t *testing.T) {
	pairs := map[Bucket]string{
		BucketNone:   "none",
		BucketRed:    "red",
		BucketYellow: "yellow",
		BucketGreen:  "green",
	}
	for bucket, want := range pairs {
		if got := bucket.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", bucket, got, want)
		}
	}
}
