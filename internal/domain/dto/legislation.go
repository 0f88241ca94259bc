package dto

import (
	"sync"
	"time"
)

// LegislationDto accumulates one act while index and detail pages are
// parsed from different goroutines.
type LegislationDto struct {
	Number      string
	Title       string
	Sphere      string
	Status      string
	PublishedAt *time.Time
	SourceURL   string

	Requirements   map[string]string
	requirementsMx sync.Mutex
}

func (l *LegislationDto) PutRequirement(name, text string) {
	l.requirementsMx.Lock()
	defer l.requirementsMx.Unlock()

	if l.Requirements == nil {
		l.Requirements = make(map[string]string)
	}
	l.Requirements[name] = text
}
