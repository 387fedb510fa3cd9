package appointment

import "testing"

func TestParseResponse(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"accepted", StatusAccepted, false},
		{"Accepted", StatusAccepted, false},
		{" REJECTED ", StatusRejected, false},
		{"rejected", StatusRejected, false},
		{"Cancelled", StatusCancelled, false},
		{"pending", "", true},
		{"", "", true},
		{"maybe", "", true},
	}
	for _, c := range cases {
		got, err := ParseResponse(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseResponse(%q) = %q, want error", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseResponse(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseResponse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatusPending) {
		t.Error("pending is not terminal")
	}
	for _, s := range []string{StatusAccepted, StatusRejected, StatusCancelled} {
		if !IsTerminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
}
