package versions

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{in: "1.0:", want: Range{Min: "1.0"}},
		{in: ":3.10", want: Range{Max: "3.10"}},
		{in: "3.11:", want: Range{Min: "3.11"}},
		{in: "0.4:2.0", want: Range{Min: "0.4", Max: "2.0"}},
		{in: "2.0", want: Range{Min: "2.0", Max: "2.0"}},
		{in: " 9: ", want: Range{Min: "9"}},
		{in: "", want: Any},
		{in: ":", want: Any},
		{in: "3.10.1:3.10", want: Range{Min: "3.10.1", Max: "3.10"}},
		{in: "1:2:3", wantErr: true},
		{in: "2.0:1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	tests := []struct {
		r    string
		v    string
		want bool
	}{
		{"1.0:", "1.0", true},
		{"1.0:", "1.5", true},
		{"1.0:", "2.0", true},
		{"1.0:", "0.9", false},
		{"1.0:", "0.4.1", false},
		{":3.10", "3.10", true},
		{":3.10", "3.10.12", true},
		{":3.10", "3.9", true},
		{":3.10", "3.11", false},
		{"3.11:", "3.11.4", true},
		{"3.11:", "3.10.12", false},
		{"2.0", "2.0.1", true},
		{"2.0", "2.1", false},
		{":", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.r+"_"+tt.v, func(t *testing.T) {
			r := MustParseRange(tt.r)
			if got := r.Contains(tt.v); got != tt.want {
				t.Errorf("Range(%q).Contains(%q) = %v, want %v", tt.r, tt.v, got, tt.want)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	for _, in := range []string{"1.0:", ":3.10", "0.4:2.0", "2.0", ":"} {
		if got := MustParseRange(in).String(); got != in {
			t.Errorf("MustParseRange(%q).String() = %q", in, got)
		}
	}
}

func TestMustParseRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseRange did not panic on malformed input")
		}
	}()
	MustParseRange("1:2:3")
}
