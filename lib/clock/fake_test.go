// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockSet(t *testing.T) {
	clock := Fake(epoch)
	target := epoch.Add(90 * time.Second)
	clock.Set(target)
	if got := clock.Now(); !got.Equal(target) {
		t.Fatalf("Now() after Set = %v, want %v", got, target)
	}
}

func TestFakeClockSetBackwardsPanics(t *testing.T) {
	clock := Fake(epoch)
	clock.Advance(time.Minute)
	defer func() {
		if recover() == nil {
			t.Fatal("Set into the past did not panic")
		}
	}()
	clock.Set(epoch)
}

func TestFakeClockAfterFiresOnAdvance(t *testing.T) {
	clock := Fake(epoch)
	channel := clock.After(3 * time.Second)

	// Should not fire yet.
	select {
	case <-channel:
		t.Fatal("After fired before Advance")
	default:
	}

	// Advance past the deadline.
	clock.Advance(3 * time.Second)

	select {
	case <-channel:
	default:
		t.Fatal("After did not fire after Advance")
	}
}

func TestFakeClockAfterZeroDuration(t *testing.T) {
	clock := Fake(epoch)
	channel := clock.After(0)

	select {
	case <-channel:
	default:
		t.Fatal("After(0) should fire immediately")
	}
}

func TestFakeClockAfterPartialAdvance(t *testing.T) {
	clock := Fake(epoch)
	channel := clock.After(5 * time.Second)

	clock.Advance(3 * time.Second)
	select {
	case <-channel:
		t.Fatal("After fired before deadline")
	default:
	}

	clock.Advance(2 * time.Second)
	select {
	case <-channel:
	default:
		t.Fatal("After did not fire at exact deadline")
	}
}

func TestFakeClockMultipleWaitersFireInOrder(t *testing.T) {
	clock := Fake(epoch)
	late := clock.After(10 * time.Second)
	early := clock.After(2 * time.Second)

	clock.Advance(15 * time.Second)

	earlyAt := <-early
	lateAt := <-late
	if !earlyAt.Equal(epoch.Add(2 * time.Second)) {
		t.Fatalf("early waiter fired at %v, want %v", earlyAt, epoch.Add(2*time.Second))
	}
	if !lateAt.Equal(epoch.Add(10 * time.Second)) {
		t.Fatalf("late waiter fired at %v, want %v", lateAt, epoch.Add(10*time.Second))
	}
}
