package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	want := time.Date(2024, 9, 16, 8, 50, 0, 0, time.UTC)
	c := Fixed(want)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFunc(t *testing.T) {
	base := time.Date(2024, 9, 16, 8, 0, 0, 0, time.UTC)
	calls := 0
	c := Func(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	})

	first, second := c.Now(), c.Now()
	if second.Sub(first) != time.Minute {
		t.Errorf("expected 1m between readings, got %v", second.Sub(first))
	}
}

func TestReal(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	if got.Before(before) {
		t.Errorf("expected Real.Now() >= %v, got %v", before, got)
	}
}
