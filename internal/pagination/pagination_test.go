package pagination

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/bookings"+query, nil)
	return c
}

func TestFromContext(t *testing.T) {
	cases := map[string]int{
		"":          1,
		"?page=3":   3,
		"?page=abc": 1,
		"?page=0":   0,
		"?page=-2":  -2,
	}
	for query, want := range cases {
		p := FromContext(contextWithQuery(query), DefaultPerPage)
		if p.Page != want {
			t.Errorf("query %q: expected page %d, got %d", query, want, p.Page)
		}
		if p.PerPage != DefaultPerPage {
			t.Errorf("query %q: expected per page %d, got %d", query, DefaultPerPage, p.PerPage)
		}
	}
}

func TestParams_Offset(t *testing.T) {
	if got := (Params{Page: 1, PerPage: 10}).Offset(); got != 0 {
		t.Errorf("page 1 offset = %d", got)
	}
	if got := (Params{Page: 3, PerPage: 10}).Offset(); got != 20 {
		t.Errorf("page 3 offset = %d", got)
	}
	if got := (Params{Page: 0, PerPage: 10}).Offset(); got != 0 {
		t.Errorf("page 0 offset = %d", got)
	}
}

func TestNewPage_Metadata(t *testing.T) {
	p := NewPage([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, Params{Page: 2, PerPage: 10}, 25)

	if p.Pages != 3 {
		t.Errorf("expected 3 pages, got %d", p.Pages)
	}
	if !p.HasPrev || p.PrevNum == nil || *p.PrevNum != 1 {
		t.Errorf("expected prev page 1, got %+v", p.PrevNum)
	}
	if !p.HasNext || p.NextNum == nil || *p.NextNum != 3 {
		t.Errorf("expected next page 3, got %+v", p.NextNum)
	}
}

func TestNewPage_Empty(t *testing.T) {
	p := NewPage[int](nil, Params{Page: 1, PerPage: 10}, 0)

	if p.Items == nil || len(p.Items) != 0 {
		t.Error("expected empty non-nil items")
	}
	if p.Pages != 0 || p.HasNext || p.HasPrev {
		t.Errorf("unexpected metadata %+v", p)
	}
}

func TestParams_OutOfRange(t *testing.T) {
	if (Params{Page: 1, PerPage: 10}).OutOfRange(0) {
		t.Error("an empty first page is not out of range")
	}
	if !(Params{Page: 0, PerPage: 10}).OutOfRange(5) {
		t.Error("page 0 is out of range")
	}
	if !(Params{Page: 4, PerPage: 10}).OutOfRange(0) {
		t.Error("an empty later page is out of range")
	}
	if (Params{Page: 2, PerPage: 10}).OutOfRange(3) {
		t.Error("a later page with items is in range")
	}
}

func TestParams_Reachable(t *testing.T) {
	cases := []struct {
		page int
		want bool
	}{
		{1, true},
		{1000, true},
		{0, false},
		{-3, false},
		{1000000000000000000, false},
		{math.MaxInt, false},
	}
	for _, tc := range cases {
		p := Params{Page: tc.page, PerPage: DefaultPerPage}
		if got := p.Reachable(); got != tc.want {
			t.Errorf("page %d: Reachable = %v, want %v", tc.page, got, tc.want)
		}
		if tc.want && p.Offset() < 0 {
			t.Errorf("page %d: negative offset %d", tc.page, p.Offset())
		}
	}
	if !(Params{Page: 1000000000000000000, PerPage: DefaultPerPage}).OutOfRange(0) {
		t.Error("an overflowing page is out of range")
	}
}
