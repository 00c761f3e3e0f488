package tpch

import "testing"

func TestScaleFactorStringRendersCanonicalSizes(t *testing.T) {
	cases := map[ScaleFactor]string{
		1:     "1 GB",
		10:    "10 GB",
		30:    "30 GB",
		100:   "100 GB",
		300:   "300 GB",
		1000:  "1000 GB",
		3000:  "3000 GB",
		10000: "10000 GB",
		30000: "30000 GB",
	}
	for sf, want := range cases {
		if got := sf.String(); got != want {
			t.Errorf("ScaleFactor(%v).String() = %q, want %q", float64(sf), got, want)
		}
	}
}

func TestScaleFactorStringFallsBackForNonCanonicalValues(t *testing.T) {
	if got, want := ScaleFactor(0.01).String(), "0.01"; got != want {
		t.Errorf("ScaleFactor(0.01).String() = %q, want %q", got, want)
	}
	if got, want := ScaleFactor(7).String(), "7"; got != want {
		t.Errorf("ScaleFactor(7).String() = %q, want %q", got, want)
	}
}
