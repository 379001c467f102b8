package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gridkit/gridview/internal/grid"
)

func TestSniffValue_Kinds(t *testing.T) {
	cases := []struct {
		in   string
		kind grid.Kind
	}{
		{"hello", grid.KindText},
		{"42", grid.KindNumber},
		{"3.14", grid.KindNumber},
		{"-7", grid.KindNumber},
		{"true", grid.KindBool},
		{"FALSE", grid.KindBool},
		{"2021-03-14", grid.KindInstant},
		{"03-14-2021", grid.KindInstant},
		{"2021-03-14T15:04:05Z", grid.KindInstant},
		{"2021-03-14 15:04:05", grid.KindInstant},
		{"not-a-date-2021", grid.KindText},
		{"", grid.KindText}, // zero value
	}
	for _, c := range cases {
		if got := SniffValue(c.in).Kind(); got != c.kind {
			t.Errorf("SniffValue(%q).Kind() = %v, want %v", c.in, got, c.kind)
		}
	}
}

func TestSniffValue_DateRoundTrip(t *testing.T) {
	v := SniffValue("2021-03-14")
	want := time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !v.Time().Equal(want) {
		t.Fatalf("parsed %v, want %v", v.Time(), want)
	}
	if v.Format() != "03-14-2021" {
		t.Fatalf("formats as %q, want 03-14-2021", v.Format())
	}
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "Name,Score,Joined\nAda,95,2021-03-14\nGrace,87,2020-01-02\n")

	columns, records, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(columns))
	}
	if columns[0].Title != "Name" || columns[0].Field != "name" {
		t.Fatalf("column 0 = %+v", columns[0])
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Cell("name").Format() != "Ada" {
		t.Errorf("name = %q", records[0].Cell("name").Format())
	}
	if records[0].Cell("score").Kind() != grid.KindNumber {
		t.Errorf("score kind = %v, want number", records[0].Cell("score").Kind())
	}
	if records[1].Cell("joined").Format() != "01-02-2020" {
		t.Errorf("joined = %q, want 01-02-2020", records[1].Cell("joined").Format())
	}
}

func TestLoadCSV_RaggedRowsTolerated(t *testing.T) {
	path := writeTempCSV(t, "A,B,C\n1,2\nx,y,z,extra\n")

	columns, records, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Short row: missing field renders empty, the render never fails.
	if got := records[0].Cell(columns[2].Field).Format(); got != "" {
		t.Fatalf("short row cell = %q, want empty", got)
	}
}

func TestLoadCSV_DuplicateHeaders(t *testing.T) {
	path := writeTempCSV(t, "Name,Name\nAda,Grace\n")

	columns, records, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if columns[0].Field == columns[1].Field {
		t.Fatalf("duplicate headers map to the same field %q", columns[0].Field)
	}
	if records[0].Cell(columns[1].Field).Format() != "Grace" {
		t.Fatalf("second Name column lost its value")
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSlugField(t *testing.T) {
	cases := map[string]string{
		"Name":        "name",
		"Join Date":   "join_date",
		"e-mail":      "e_mail",
		"Score (pts)": "score_pts",
		"!!!":         "field",
	}
	for in, want := range cases {
		if got := slugField(in); got != want {
			t.Errorf("slugField(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSampleRecords(t *testing.T) {
	records := SampleRecords(25)
	if len(records) != 25 {
		t.Fatalf("got %d records, want 25", len(records))
	}
	seen := make(map[string]bool)
	for _, rec := range records {
		id := rec.Cell("id").Format()
		if id == "" {
			t.Fatal("record missing id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if rec.Cell("joined").Kind() != grid.KindInstant {
			t.Fatal("joined is not an instant")
		}
	}
}
