package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// Summary reports what a run did, per entity, in import order.
type Summary struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Entities  []*EntitySummary
}

type EntitySummary struct {
	Entity string
	// Files is the number of files loaded, Rows the number of rows stored.
	Files int
	Rows  int
	// OrphanFiles belong to a DUNS without a company file.
	OrphanFiles     int
	UnreadableFiles int
	DroppedRows     int
}

func newSummary() *Summary {
	return &Summary{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
}

// Entity returns the counters of one entity, nil if it was not imported.
func (s *Summary) Entity(name string) *EntitySummary {
	for _, e := range s.Entities {
		if e.Entity == name {
			return e
		}
	}
	return nil
}

// Rows is the number of rows stored across all entities.
func (s *Summary) Rows() int {
	total := 0
	for _, e := range s.Entities {
		total += e.Rows
	}
	return total
}

func (s *Summary) entity(name string) *EntitySummary {
	if e := s.Entity(name); e != nil {
		return e
	}
	e := &EntitySummary{Entity: name}
	s.Entities = append(s.Entities, e)
	return e
}

func (s *Summary) log() {
	log.Infof("import %s finished in %s: %d rows", s.RunID, s.Duration.Round(time.Millisecond), s.Rows())
	for _, e := range s.Entities {
		log.Infof("  %-20s files=%d rows=%d orphans=%d unreadable=%d dropped=%d",
			e.Entity, e.Files, e.Rows, e.OrphanFiles, e.UnreadableFiles, e.DroppedRows)
	}
}
