package grid

import "testing"

// names extracts the name column for order assertions.
func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Cell("name").Format()
	}
	return out
}

func assertOrder(t *testing.T, got []Record, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %d records, want %d\n  got:  %v\n  want: %v", len(gotNames), len(want), gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("order mismatch at %d:\n  got:  %v\n  want: %v", i, gotNames, want)
		}
	}
}

func TestSort_NoFieldIsIdentity(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Oslo", date(2021, 1, 2)),
	}
	got := Sort(records, "", Ascending)
	assertOrder(t, got, "Carol", "Alice")
}

func TestSort_TextAscending(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Lima", date(2021, 1, 2)),
		person("Bob", "Kyiv", date(2021, 1, 3)),
	}
	got := Sort(records, "name", Ascending)
	assertOrder(t, got, "Alice", "Bob", "Carol")
}

func TestSort_TextDescending(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Lima", date(2021, 1, 2)),
		person("Bob", "Kyiv", date(2021, 1, 3)),
	}
	got := Sort(records, "name", Descending)
	assertOrder(t, got, "Carol", "Bob", "Alice")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Lima", date(2021, 1, 2)),
	}
	Sort(records, "name", Ascending)
	assertOrder(t, records, "Carol", "Alice")
}

func TestSort_InstantsCompareChronologically(t *testing.T) {
	// Lexical order of the formatted dates would put 02-28-2019 before
	// 12-01-2018; chronological order must win for instant columns.
	records := []Record{
		person("Late", "Oslo", date(2019, 2, 28)),
		person("Early", "Lima", date(2018, 12, 1)),
	}
	got := Sort(records, "joined", Ascending)
	assertOrder(t, got, "Early", "Late")
}

func TestSort_NumbersCompareAsDisplayText(t *testing.T) {
	records := []Record{
		{"name": Text("ten"), "n": Number(10)},
		{"name": Text("two"), "n": Number(2)},
	}
	// Ordinal string ordering: "10" < "2".
	got := Sort(records, "n", Ascending)
	assertOrder(t, got, "ten", "two")
}

func TestSort_StableOnTies(t *testing.T) {
	records := []Record{
		person("First", "Oslo", date(2021, 1, 1)),
		person("Second", "Oslo", date(2021, 1, 2)),
		person("Third", "Oslo", date(2021, 1, 3)),
	}
	got := Sort(records, "city", Ascending)
	assertOrder(t, got, "First", "Second", "Third")

	// Descending inverts the comparison, not the slice: ties stay put.
	got = Sort(records, "city", Descending)
	assertOrder(t, got, "First", "Second", "Third")
}

func TestSort_Idempotent(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Lima", date(2021, 1, 2)),
		person("Bob", "Kyiv", date(2021, 1, 3)),
	}
	once := Sort(records, "name", Ascending)
	twice := Sort(once, "name", Ascending)
	assertOrder(t, twice, names(once)...)
}

func TestSort_DescendingInvertsDistinctKeysOnly(t *testing.T) {
	records := []Record{
		person("A1", "Lima", date(2021, 1, 1)),
		person("A2", "Lima", date(2021, 1, 2)),
		person("B1", "Oslo", date(2021, 1, 3)),
	}
	got := Sort(records, "city", Descending)
	// Oslo group before Lima group, but A1 still before A2.
	assertOrder(t, got, "B1", "A1", "A2")
}

func TestSort_MissingFieldSortsAsEmpty(t *testing.T) {
	records := []Record{
		person("Has", "Oslo", date(2021, 1, 1)),
		{"name": Text("Missing")},
	}
	got := Sort(records, "city", Ascending)
	assertOrder(t, got, "Missing", "Has")
}

func TestSort_ThreeActivationsCycle(t *testing.T) {
	st := NewState()

	st.ToggleSort("name")
	if st.SortField != "name" || st.SortDir != Ascending {
		t.Fatalf("after 1st activation: %q/%v, want name/asc", st.SortField, st.SortDir)
	}
	st.ToggleSort("name")
	if st.SortField != "name" || st.SortDir != Descending {
		t.Fatalf("after 2nd activation: %q/%v, want name/desc", st.SortField, st.SortDir)
	}
	st.ToggleSort("name")
	if st.SortField != "name" || st.SortDir != Ascending {
		t.Fatalf("after 3rd activation: %q/%v, want name/asc", st.SortField, st.SortDir)
	}
}

func TestSort_ToggleSwitchingFieldsResetsToAscending(t *testing.T) {
	st := NewState()
	st.ToggleSort("name")
	st.ToggleSort("name") // name/desc
	st.ToggleSort("joined")
	if st.SortField != "joined" || st.SortDir != Ascending {
		t.Fatalf("switching fields gave %q/%v, want joined/asc", st.SortField, st.SortDir)
	}
}
