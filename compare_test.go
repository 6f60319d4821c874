package fragscan

import (
	"math"
	"testing"
	"time"
)

func TestEqualResults(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"both_empty", nil, []string{}, true},
		{"equal", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different_order", []string{"a", "b"}, []string{"b", "a"}, false},
		{"different_length", []string{"a"}, []string{"a", "a"}, false},
		{"different_multiplicity", []string{"a", "a", "b"}, []string{"a", "b", "b"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EqualResults(tc.a, tc.b); got != tc.want {
				t.Fatalf("EqualResults(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestComparePerformance(t *testing.T) {
	cases := []struct {
		name string
		a, b Statistics
		want Comparison
	}{
		{
			name: "a_faster",
			a:    Statistics{Average: 2 * time.Microsecond},
			b:    Statistics{Average: 6 * time.Microsecond},
			want: Comparison{Faster: SideA, Ratio: 3, Defined: true},
		},
		{
			name: "b_faster",
			a:    Statistics{Average: 10 * time.Microsecond},
			b:    Statistics{Average: 5 * time.Microsecond},
			want: Comparison{Faster: SideB, Ratio: 2, Defined: true},
		},
		{
			name: "equal_averages",
			a:    Statistics{Average: 4 * time.Microsecond},
			b:    Statistics{Average: 4 * time.Microsecond},
			want: Comparison{Faster: SideNone, Ratio: 1, Defined: true},
		},
		{
			name: "zero_denominator",
			a:    Statistics{Average: 0},
			b:    Statistics{Average: time.Microsecond},
			want: Comparison{Faster: SideNone},
		},
		{
			name: "both_zero",
			a:    Statistics{},
			b:    Statistics{},
			want: Comparison{Faster: SideNone},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComparePerformance(tc.a, tc.b)
			if got.Faster != tc.want.Faster || got.Defined != tc.want.Defined {
				t.Fatalf("ComparePerformance = %+v, want %+v", got, tc.want)
			}
			if tc.want.Defined && math.Abs(got.Ratio-tc.want.Ratio) > 1e-9 {
				t.Fatalf("Ratio = %v, want %v", got.Ratio, tc.want.Ratio)
			}
			if got.Defined && got.Ratio < 1 {
				t.Fatalf("defined Ratio %v is below 1", got.Ratio)
			}
			if math.IsInf(got.Ratio, 0) || math.IsNaN(got.Ratio) {
				t.Fatalf("Ratio is not finite: %v", got.Ratio)
			}
		})
	}
}

func TestWorkRatio(t *testing.T) {
	// The worked example: 145 substrings enumerated for 8 fragments.
	ratio, ok := WorkRatio(145, 8)
	if !ok {
		t.Fatal("WorkRatio(145, 8) reported undefined")
	}
	if math.Abs(ratio-18.125) > 1e-9 {
		t.Fatalf("WorkRatio(145, 8) = %v, want 18.125", ratio)
	}
}

func TestWorkRatioEmptyFragmentSet(t *testing.T) {
	if ratio, ok := WorkRatio(145, 0); ok || ratio != 0 {
		t.Fatalf("WorkRatio(145, 0) = (%v, %v), want (0, false)", ratio, ok)
	}
}

func TestSideString(t *testing.T) {
	if SideA.String() != "a" || SideB.String() != "b" || SideNone.String() != "none" {
		t.Fatalf("unexpected Side names: %q %q %q", SideA, SideB, SideNone)
	}
}
