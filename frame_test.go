package tiltlevel

import "testing"

func TestFrameSetClear(t *testing.T) {
	var f Frame
	if f.Lit() != 0 {
		t.Fatalf("new frame has %d lit cells", f.Lit())
	}

	f.Set(1, 3)
	f.Set(5, 0) // ignored
	f.Set(0, 9) // ignored
	if f.Lit() != 1 || !f.At(1, 3) {
		t.Fatalf("expected only (1,3) lit, got\n%s", f.String())
	}
	if f.At(7, 7) {
		t.Fatal("out of range cell reported lit")
	}

	want := ".....\n...#.\n.....\n.....\n.....\n"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	f.Clear()
	if f.Lit() != 0 {
		t.Fatalf("cleared frame has %d lit cells", f.Lit())
	}
}
