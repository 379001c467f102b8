package grid

import (
	"testing"
	"time"
)

var filterCols = []Column{
	{Title: "Name", Field: "name"},
	{Title: "City", Field: "city"},
	{Title: "Joined", Field: "joined"},
}

// person builds a test record with a name, city, and join date.
func person(name, city string, joined time.Time) Record {
	return Record{
		"name":   Text(name),
		"city":   Text(city),
		"joined": Instant(joined),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	records := []Record{
		person("Ada", "London", date(2021, 3, 14)),
		person("Grace", "New York", date(2020, 1, 2)),
	}

	got := Filter(records, filterCols, "")
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range got {
		if got[i].Cell("name").Format() != records[i].Cell("name").Format() {
			t.Fatalf("record %d changed by empty filter", i)
		}
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	records := []Record{
		person("Ada Smith", "London", date(2021, 3, 14)),
		person("Grace Hopper", "New York", date(2020, 1, 2)),
		person("Alan Smithee", "Boston", date(2019, 7, 30)),
	}

	got := Filter(records, filterCols, "SMITH")
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Cell("name").Format() != "Ada Smith" {
		t.Errorf("first match = %q, want Ada Smith", got[0].Cell("name").Format())
	}
	if got[1].Cell("name").Format() != "Alan Smithee" {
		t.Errorf("second match = %q, want Alan Smithee", got[1].Cell("name").Format())
	}
}

func TestFilter_MatchesAnyColumn(t *testing.T) {
	records := []Record{
		person("Ada", "London", date(2021, 3, 14)),
		person("Grace", "New York", date(2020, 1, 2)),
	}

	got := Filter(records, filterCols, "york")
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Cell("name").Format() != "Grace" {
		t.Errorf("matched %q, want Grace", got[0].Cell("name").Format())
	}
}

func TestFilter_MatchesFormattedDateText(t *testing.T) {
	records := []Record{
		person("Ada", "London", date(2021, 3, 14)),
		person("Grace", "New York", date(2020, 1, 2)),
	}

	// Dates filter by their MM-DD-YYYY display form.
	got := Filter(records, filterCols, "03-14-2021")
	if len(got) != 1 || got[0].Cell("name").Format() != "Ada" {
		t.Fatalf("expected only Ada to match the formatted date, got %d records", len(got))
	}

	// A name term never matches a date column's text.
	got = Filter(records, filterCols, "smith")
	if len(got) != 0 {
		t.Fatalf("expected no matches for %q, got %d", "smith", len(got))
	}
}

func TestFilter_NoMatchesIsEmptyNotNilPanic(t *testing.T) {
	records := []Record{person("Ada", "London", date(2021, 3, 14))}
	got := Filter(records, filterCols, "zzz")
	if len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
}

func TestFilter_MissingFieldTreatedAsEmpty(t *testing.T) {
	records := []Record{
		{"name": Text("Ada")}, // no city, no joined
		person("Grace", "New York", date(2020, 1, 2)),
	}

	got := Filter(records, filterCols, "new")
	if len(got) != 1 || got[0].Cell("name").Format() != "Grace" {
		t.Fatalf("partial record should not match nor fail; got %d records", len(got))
	}
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	records := []Record{
		person("Carol", "Oslo", date(2021, 1, 1)),
		person("Alice", "Oslo", date(2021, 1, 2)),
		person("Bob", "Oslo", date(2021, 1, 3)),
	}

	got := Filter(records, filterCols, "oslo")
	want := []string{"Carol", "Alice", "Bob"}
	for i, name := range want {
		if got[i].Cell("name").Format() != name {
			t.Fatalf("position %d = %q, want %q", i, got[i].Cell("name").Format(), name)
		}
	}
}
