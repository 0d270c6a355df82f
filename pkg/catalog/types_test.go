package catalog

import (
	"errors"
	"testing"
)

func TestSortOrder_Direction(t *testing.T) {
	if SortAsc.Direction() != 1 {
		t.Fatalf("SortAsc.Direction() = %d, want 1", SortAsc.Direction())
	}
	if SortDesc.Direction() != -1 {
		t.Fatalf("SortDesc.Direction() = %d, want -1", SortDesc.Direction())
	}
	if SortOrder("bogus").Direction() != 1 {
		t.Fatal("unknown order should sort ascending")
	}
}

func TestPage_Offset(t *testing.T) {
	cases := []struct {
		page, size int
		want       int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 7, 14},
		{100, 25, 2475},
	}
	for _, tc := range cases {
		p := Page{Number: tc.page, Size: tc.size}
		if got := p.Offset(); got != tc.want {
			t.Fatalf("Page{%d,%d}.Offset() = %d, want %d", tc.page, tc.size, got, tc.want)
		}
	}
}

func TestPage_Validate(t *testing.T) {
	valid := []Page{{1, 1}, {1, 50}, {42, 10}}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Fatalf("Page{%d,%d}.Validate() = %v, want nil", p.Number, p.Size, err)
		}
	}

	invalid := []Page{{0, 10}, {-1, 10}, {1, 0}, {1, -5}, {0, 0}}
	for _, p := range invalid {
		err := p.Validate()
		if err == nil {
			t.Fatalf("Page{%d,%d}.Validate() = nil, want error", p.Number, p.Size)
		}
		if !errors.Is(err, ErrInvalidPage) {
			t.Fatalf("Page{%d,%d}.Validate() = %v, want ErrInvalidPage", p.Number, p.Size, err)
		}
	}
}

func TestPage_Limit(t *testing.T) {
	p := Page{Number: 3, Size: 25}
	if p.Limit() != 25 {
		t.Fatalf("Limit() = %d, want 25", p.Limit())
	}
}
