package source

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/gridkit/gridview/internal/grid"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// newULID generates a time-sortable unique row identifier.
func newULID(t time.Time) string {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

var (
	sampleNames = []string{
		"Ada Lovelace", "Grace Hopper", "Alan Turing", "Edsger Dijkstra",
		"Barbara Liskov", "Donald Knuth", "Frances Allen", "Tony Hoare",
		"Margaret Hamilton", "Dennis Ritchie", "Radia Perlman", "Ken Thompson",
	}
	sampleTeams = []string{"Platform", "Storage", "Networking", "Tooling"}
)

// SampleColumns is the column set of the built-in demo data.
var SampleColumns = []grid.Column{
	{Title: "ID", Field: "id"},
	{Title: "Name", Field: "name"},
	{Title: "Team", Field: "team"},
	{Title: "Active", Field: "active"},
	{Title: "Score", Field: "score"},
	{Title: "Joined", Field: "joined"},
}

// SampleRecords generates n demo records with ULID identifiers, cycled
// names and teams, and join dates spread over consecutive weeks. Handy
// for trying the viewer without any input data.
func SampleRecords(n int) []grid.Record {
	base := time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC)
	records := make([]grid.Record, n)
	for i := 0; i < n; i++ {
		joined := base.AddDate(0, 0, 7*i)
		records[i] = grid.Record{
			"id":     grid.Text(newULID(joined)),
			"name":   grid.Text(sampleNames[i%len(sampleNames)]),
			"team":   grid.Text(sampleTeams[i%len(sampleTeams)]),
			"active": grid.Bool(i%3 != 0),
			"score":  grid.Number(float64(randomScore())),
			"joined": grid.Instant(joined),
		}
	}
	return records
}

// randomScore picks a score in [0, 100).
func randomScore() int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return 0
	}
	return v.Int64()
}
