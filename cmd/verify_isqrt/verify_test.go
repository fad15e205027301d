package main

import "testing"

func TestCheckRange(t *testing.T) {
	if err := checkRange(1<<18, 4); err != nil {
		t.Error(err)
	}
}

func TestCompareDigests(t *testing.T) {
	if err := compareDigests(100000, 4); err != nil {
		t.Error(err)
	}
	if err := compareDigests(1<<40, 4); err == nil {
		t.Errorf("expected bound error")
	}
}

func TestDataset(t *testing.T) {
	for size, want := range map[string]int{"small": 1 << 8, "medium": 1 << 10, "big": 1 << 12, "huge": 0xffff} {
		samples, err := dataset(size)
		if err != nil {
			t.Errorf("dataset(%q) failed: %v", size, err)
			continue
		}
		if len(samples) != want {
			t.Errorf("dataset(%q) has %d samples, want %d", size, len(samples), want)
		}
		if err := checkSamples(samples, 4); err != nil {
			t.Errorf("dataset(%q): %v", size, err)
		}
	}
	if _, err := dataset("tiny"); err == nil {
		t.Errorf("expected unknown size error")
	}
}

func TestSearchAll(t *testing.T) {
	if err := searchAll(1<<20, 4); err != nil {
		t.Error(err)
	}
}
