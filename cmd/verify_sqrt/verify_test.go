package main

import "testing"

func TestVerify(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		if err := verify(seed, 1000, 4096, 4); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
	}
}
