package utils

import (
	"testing"
	"time"
)

func TestStartCurrentDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	moment := time.Date(2021, 8, 1, 23, 45, 12, 999, loc)

	got := StartCurrentDay(moment)
	want := time.Date(2021, 8, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestStartNextDay(t *testing.T) {
	t.Parallel()

	moment := time.Date(2021, 8, 31, 10, 0, 0, 0, time.UTC)

	got := StartNextDay(moment)
	want := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombineDateTime(t *testing.T) {
	t.Parallel()

	date := time.Date(2021, 8, 2, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC)

	got := CombineDateTime(date, clock)
	want := time.Date(2021, 8, 2, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
