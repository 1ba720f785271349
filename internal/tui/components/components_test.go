package components

import "testing"

func TestLayoutRow(t *testing.T) {
	cases := []struct {
		total, n int
		want     []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{7, 2, []int{4, 3}},
		{5, 6, []int{1, 1, 1, 1, 1, 0}},
	}
	for _, tc := range cases {
		got := LayoutRow(tc.total, tc.n)
		sum := 0
		for i, w := range got {
			sum += w
			if w != tc.want[i] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d, want %d", tc.total, tc.n, i, w, tc.want[i])
			}
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow with n=0 returned %v", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('t'); got != 1 {
		t.Errorf("TabIdxByKey('t') = %d, want 1", got)
	}
	if got := TabIdxByKey('x'); got != 5 {
		t.Errorf("TabIdxByKey('x') = %d, want 5", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	overview := Tabs[0] // key letter inside the name
	settings := Tabs[5] // key letter appended as [x]

	if got := TabVisualWidth(overview, true); got != len("Overview") {
		t.Errorf("active width = %d", got)
	}
	if got := TabVisualWidth(overview, false); got != len("Overview")+2 {
		t.Errorf("inactive in-name width = %d", got)
	}
	if got := TabVisualWidth(settings, false); got != len("Settings")+3 {
		t.Errorf("inactive appended-key width = %d", got)
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	// Narrow cards clamp so text still has room.
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want clamp to 10", got)
	}
}
