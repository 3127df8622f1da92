// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/orb"
)

func TestOptionZeroValueIsNone(t *testing.T) {
	var o orb.Option[int]
	if o.IsSome() || !o.IsNone() {
		t.Fatal("zero Option is not None")
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Fatalf("zero Option.Get() = (%d, %v)", v, ok)
	}
}

func TestOptionSomeNone(t *testing.T) {
	s := orb.Some(42)
	if v, ok := s.Get(); !ok || v != 42 {
		t.Fatalf("Some(42).Get() = (%d, %v)", v, ok)
	}
	if got := s.OrElse(-1); got != 42 {
		t.Fatalf("Some(42).OrElse(-1) = %d", got)
	}
	if got := orb.None[int]().OrElse(-1); got != -1 {
		t.Fatalf("None.OrElse(-1) = %d", got)
	}
}

func TestOptionMatch(t *testing.T) {
	var visited string
	orb.Some("v").Match(
		func(s string) { visited = "some:" + s },
		func() { visited = "none" },
	)
	if visited != "some:v" {
		t.Fatalf("Some.Match visited %q", visited)
	}
	orb.None[string]().Match(
		func(string) { visited = "some" },
		func() { visited = "none" },
	)
	if visited != "none" {
		t.Fatalf("None.Match visited %q", visited)
	}

	got := orb.MatchOption(orb.Some(2),
		func(n int) string { return strconv.Itoa(n) },
		func() string { return "none" },
	)
	if got != "2" {
		t.Fatalf("MatchOption(Some(2)) = %q", got)
	}
}

func TestOptionMapBind(t *testing.T) {
	double := func(n int) int { return 2 * n }
	if v, ok := orb.MapOption(orb.Some(3), double).Get(); !ok || v != 6 {
		t.Fatalf("MapOption(Some(3)) = (%d, %v)", v, ok)
	}
	if orb.MapOption(orb.None[int](), double).IsSome() {
		t.Fatal("MapOption(None) produced a value")
	}

	half := func(n int) orb.Option[int] {
		if n%2 != 0 {
			return orb.None[int]()
		}
		return orb.Some(n / 2)
	}
	if v, ok := orb.BindOption(orb.Some(6), half).Get(); !ok || v != 3 {
		t.Fatalf("BindOption(Some(6)) = (%d, %v)", v, ok)
	}
	if orb.BindOption(orb.Some(5), half).IsSome() {
		t.Fatal("BindOption(Some(5)) produced a value")
	}
	if orb.BindOption(orb.None[int](), half).IsSome() {
		t.Fatal("BindOption(None) produced a value")
	}
}

func TestOptionPtrRoundTrip(t *testing.T) {
	if orb.FromPtr[int](nil).IsSome() {
		t.Fatal("FromPtr(nil) is Some")
	}
	n := 9
	if v, ok := orb.FromPtr(&n).Get(); !ok || v != 9 {
		t.Fatalf("FromPtr(&9) = (%d, %v)", v, ok)
	}
	if p := orb.None[int]().Ptr(); p != nil {
		t.Fatalf("None.Ptr() = %v", p)
	}
	p := orb.Some(9).Ptr()
	if p == nil || *p != 9 {
		t.Fatalf("Some(9).Ptr() = %v", p)
	}
	// The pointer must not alias the option's own storage.
	*p = 10
	if v, _ := orb.Some(9).Get(); v != 9 {
		t.Fatal("Ptr() exposed internal storage")
	}
}

func TestMatchPairBranches(t *testing.T) {
	run := func(l orb.Option[int], r orb.Option[string]) string {
		return orb.MatchPair(l, r,
			func(lv int) string { return "left:" + strconv.Itoa(lv) },
			func(rv string) string { return "right:" + rv },
			func(lv int, rv string) string { return "both:" + strconv.Itoa(lv) + rv },
			func() string { return "none" },
		)
	}
	if got := run(orb.None[int](), orb.None[string]()); got != "none" {
		t.Fatalf("MatchPair(None, None) = %q", got)
	}
	if got := run(orb.Some(1), orb.None[string]()); got != "left:1" {
		t.Fatalf("MatchPair(Some, None) = %q", got)
	}
	if got := run(orb.None[int](), orb.Some("r")); got != "right:r" {
		t.Fatalf("MatchPair(None, Some) = %q", got)
	}
	if got := run(orb.Some(1), orb.Some("r")); got != "both:1r" {
		t.Fatalf("MatchPair(Some, Some) = %q", got)
	}
}
