package square_test

import (
	"testing"

	"github.com/lperrin/negachess/pkg/square"
)

func TestIndices(t *testing.T) {
	cases := []struct {
		sq   square.Square
		want string
	}{
		{square.A1, "a1"},
		{square.H1, "h1"},
		{square.A2, "a2"},
		{square.H8, "h8"},
		{square.E4, "e4"},
	}

	for _, c := range cases {
		if got := c.sq.String(); got != c.want {
			t.Errorf("Square(%d).String() = %q, want %q", c.sq, got, c.want)
		}
	}

	if square.A1 != 0 {
		t.Errorf("a1 = %d, want 0", square.A1)
	}
	if square.H1 != 7 {
		t.Errorf("h1 = %d, want 7", square.H1)
	}
	if square.H8 != 63 {
		t.Errorf("h8 = %d, want 63", square.H8)
	}
}

func TestRoundTrip(t *testing.T) {
	for s := square.A1; s <= square.H8; s++ {
		str := s.String()
		got := square.NewFromString(str)
		if got != s {
			t.Errorf("round trip of %d through %q gave %d", s, str, got)
		}

		if got := square.New(s.File(), s.Rank()); got != s {
			t.Errorf("New(%d.File(), %d.Rank()) = %d, want %d", s, s, got, s)
		}
	}
}

func TestFileRank(t *testing.T) {
	if f := square.E4.File(); f != square.FileE {
		t.Errorf("e4.File() = %d, want FileE", f)
	}
	if r := square.E4.Rank(); r != square.Rank4 {
		t.Errorf("e4.Rank() = %d, want Rank4", r)
	}
}

func TestNoneString(t *testing.T) {
	if got := square.None.String(); got != "-" {
		t.Errorf("None.String() = %q, want %q", got, "-")
	}
	if got := square.NewFromString("-"); got != square.None {
		t.Errorf(`NewFromString("-") = %d, want None`, got)
	}
}
