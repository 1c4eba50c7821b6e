package rules

import "testing"

func TestIsAlive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantLive := n == 2 || n == 3
		if got := IsAlive(true, n); got != wantLive {
			t.Errorf("IsAlive(true, %d) = %v, want %v", n, got, wantLive)
		}

		wantDead := n == 3
		if got := IsAlive(false, n); got != wantDead {
			t.Errorf("IsAlive(false, %d) = %v, want %v", n, got, wantDead)
		}
	}
}
