package paginate

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{23, 10, 3},
		{20, 10, 2},
		{0, 10, 1},
		{5, 0, 1},  // "all" mode
		{50, 50, 1},
		{51, 50, 2},
	}
	for _, tc := range cases {
		p := New(tc.size)
		p.SetTotal(tc.total)
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("total=%d size=%d: TotalPages() = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name        string
		total, size int
		page        int
		want        []int
	}{
		{"small set no ellipsis", 23, 10, 2, []int{1, 2, 3}},
		{"middle of long set", 100, 10, 5, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"near start", 100, 10, 1, []int{1, 2, Ellipsis, 10}},
		{"near end", 100, 10, 10, []int{1, Ellipsis, 9, 10}},
		{"adjacent gap of one collapses nothing", 40, 10, 2, []int{1, 2, 3, 4}},
		{"single page", 5, 10, 1, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.size)
			p.SetTotal(tc.total)
			p.SetPage(tc.page)
			if got := p.Window(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Window() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClamping(t *testing.T) {
	p := New(10)
	p.SetTotal(23)
	p.SetPage(99)
	if p.Page() != 3 {
		t.Errorf("page clamped to %d, want 3", p.Page())
	}
	p.SetPage(-4)
	if p.Page() != 1 {
		t.Errorf("page clamped to %d, want 1", p.Page())
	}

	// shrinking the data set pulls the page back in range
	p.SetPage(3)
	p.SetTotal(5)
	if p.Page() != 1 {
		t.Errorf("page after shrink = %d, want 1", p.Page())
	}

	// growing the page size does the same
	p.SetTotal(100)
	p.SetPage(10)
	p.SetPageSize(50)
	if p.Page() != 2 {
		t.Errorf("page after resize = %d, want 2", p.Page())
	}
}

func TestBoundsAndNav(t *testing.T) {
	p := New(10)
	p.SetTotal(23)

	if !p.AtFirst() || p.AtLast() {
		t.Error("fresh pager should sit at first page")
	}

	lo, hi := p.Bounds()
	if lo != 0 || hi != 10 {
		t.Errorf("page 1 bounds = [%d,%d)", lo, hi)
	}

	p.Next()
	p.Next()
	if !p.AtLast() {
		t.Error("page 3 of 3 should be last")
	}
	lo, hi = p.Bounds()
	if lo != 20 || hi != 23 {
		t.Errorf("page 3 bounds = [%d,%d)", lo, hi)
	}

	p.Next() // no-op at last page
	if p.Page() != 3 {
		t.Errorf("Next past end moved to %d", p.Page())
	}

	// "all" mode
	p.SetPageSize(0)
	lo, hi = p.Bounds()
	if lo != 0 || hi != 23 {
		t.Errorf("all-mode bounds = [%d,%d)", lo, hi)
	}
}
