package grid

import (
	"fmt"
	"testing"
)

// people builds n records named p01..pNN joined on consecutive days.
func people(n int) []Record {
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = Record{
			"name":   Text(fmt.Sprintf("p%02d", i+1)),
			"joined": Instant(date(2021, 1, i%28+1)),
		}
	}
	return out
}

var viewCols = []Column{
	{Title: "Name", Field: "name"},
	{Title: "Joined", Field: "joined"},
}

func TestCompute_TwelveRecordsTwoPages(t *testing.T) {
	records := people(12)
	st := NewState() // page 1, 10 per page

	v := Compute(records, viewCols, st)
	if v.TotalEntries != 12 {
		t.Fatalf("total = %d, want 12", v.TotalEntries)
	}
	if v.PageCount != 2 {
		t.Fatalf("pageCount = %d, want 2", v.PageCount)
	}
	if v.FirstIndex != 0 || v.LastIndex != 10 {
		t.Fatalf("page 1 window = [%d,%d), want [0,10)", v.FirstIndex, v.LastIndex)
	}
	if len(v.Visible) != 10 || v.Visible[0].Cell("name").Format() != "p01" {
		t.Fatalf("page 1 shows %d records starting %q", len(v.Visible), v.Visible[0].Cell("name").Format())
	}

	st.GoToPage(2, v.PageCount)
	v = Compute(records, viewCols, st)
	if v.FirstIndex != 10 || v.LastIndex != 12 {
		t.Fatalf("page 2 window = [%d,%d), want [10,12)", v.FirstIndex, v.LastIndex)
	}
	if len(v.Visible) != 2 || v.Visible[1].Cell("name").Format() != "p12" {
		t.Fatalf("page 2 shows %d records ending %q", len(v.Visible), v.Visible[len(v.Visible)-1].Cell("name").Format())
	}
}

func TestCompute_PagesCoverSortedExactly(t *testing.T) {
	records := people(23)
	for _, perPage := range []int{1, 3, 10, 25} {
		st := NewState()
		st.SetPerPage(perPage)

		full := Compute(records, viewCols, st)
		var concat []Record
		for p := 1; p <= full.PageCount; p++ {
			st.GoToPage(p, full.PageCount)
			v := Compute(records, viewCols, st)
			concat = append(concat, v.Visible...)
		}

		if len(concat) != full.TotalEntries {
			t.Fatalf("perPage=%d: concatenated %d records, want %d", perPage, len(concat), full.TotalEntries)
		}
		for i := range concat {
			if concat[i].Cell("name").Format() != full.Sorted[i].Cell("name").Format() {
				t.Fatalf("perPage=%d: gap or duplicate at index %d", perPage, i)
			}
		}
	}
}

func TestCompute_SearchResetsToPageOne(t *testing.T) {
	records := people(30)
	st := NewState()
	st.GoToPage(3, 3)

	st.SetSearch("p0")
	if st.Page != 1 {
		t.Fatalf("page = %d after search, want 1", st.Page)
	}

	v := Compute(records, viewCols, st)
	if v.TotalEntries != 9 { // p01..p09
		t.Fatalf("filtered total = %d, want 9", v.TotalEntries)
	}
	if v.Page != 1 {
		t.Fatalf("view page = %d, want 1", v.Page)
	}
}

func TestCompute_ReclampsStalePage(t *testing.T) {
	_ = people(50)
	st := NewState() // 10 per page, 5 pages
	st.GoToPage(5, 5)

	// Data shrinks underneath the stored page.
	shrunk := people(12)
	v := Compute(shrunk, viewCols, st)
	if v.PageCount != 2 {
		t.Fatalf("pageCount = %d, want 2", v.PageCount)
	}
	if v.Page != 2 {
		t.Fatalf("page = %d, want clamped to 2", v.Page)
	}
	if v.FirstIndex != 10 || v.LastIndex != 12 {
		t.Fatalf("window = [%d,%d), want [10,12)", v.FirstIndex, v.LastIndex)
	}
}

func TestCompute_EmptyResultSet(t *testing.T) {
	st := NewState()
	v := Compute(nil, viewCols, st)
	if v.TotalEntries != 0 || v.PageCount != 0 {
		t.Fatalf("empty set: total=%d pageCount=%d", v.TotalEntries, v.PageCount)
	}
	if v.Page != 1 {
		t.Fatalf("empty set page = %d, want 1", v.Page)
	}
	if v.FirstIndex != 0 || v.LastIndex != 0 || len(v.Visible) != 0 {
		t.Fatalf("empty set window = [%d,%d) len %d", v.FirstIndex, v.LastIndex, len(v.Visible))
	}
}

func TestCompute_LargerPerPageShrinksPageCount(t *testing.T) {
	records := people(30)
	st := NewState()
	st.GoToPage(3, 3)

	st.SetPerPage(25)
	v := Compute(records, viewCols, st)
	if v.PageCount != 2 {
		t.Fatalf("pageCount = %d, want 2", v.PageCount)
	}
	if v.Page != 2 {
		t.Fatalf("page = %d, want reclamped to 2", v.Page)
	}
}

func TestGoToPage_OutOfRangeIgnored(t *testing.T) {
	st := NewState()
	st.GoToPage(0, 5)
	if st.Page != 1 {
		t.Fatalf("page = %d after GoToPage(0), want 1", st.Page)
	}
	st.GoToPage(6, 5)
	if st.Page != 1 {
		t.Fatalf("page = %d after GoToPage(6), want 1", st.Page)
	}
	st.GoToPage(4, 5)
	if st.Page != 4 {
		t.Fatalf("page = %d after GoToPage(4), want 4", st.Page)
	}
}

func TestSetPerPage_RejectsNonPositive(t *testing.T) {
	st := NewState()
	st.SetPerPage(0)
	if st.PerPage != DefaultPerPage {
		t.Fatalf("perPage = %d, want %d", st.PerPage, DefaultPerPage)
	}
	st.SetPerPage(-3)
	if st.PerPage != DefaultPerPage {
		t.Fatalf("perPage = %d, want %d", st.PerPage, DefaultPerPage)
	}
}

func TestCompute_FilterSortPaginateComposition(t *testing.T) {
	records := []Record{
		person("Delta Smith", "Oslo", date(2021, 4, 1)),
		person("Alpha Smith", "Lima", date(2021, 1, 1)),
		person("Gamma Jones", "Kyiv", date(2021, 3, 1)),
		person("Beta Smith", "Oslo", date(2021, 2, 1)),
	}
	st := NewState()
	st.SetSearch("smith")
	st.ToggleSort("joined")
	st.SetPerPage(2)

	v := Compute(records, filterCols, st)
	if v.TotalEntries != 3 {
		t.Fatalf("filtered total = %d, want 3", v.TotalEntries)
	}
	assertOrder(t, v.Visible, "Alpha Smith", "Beta Smith")

	st.GoToPage(2, v.PageCount)
	v = Compute(records, filterCols, st)
	assertOrder(t, v.Visible, "Delta Smith")
}
