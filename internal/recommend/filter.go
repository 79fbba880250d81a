package recommend

import "ootd/internal/models"

// upcomingEventTags is the fixed interest set for the upcoming-events
// shelf. Archived collections stay eligible: a past trip collection can
// be re-tagged and resurfaced, so archival and upcoming relevance are
// orthogonal.
var upcomingEventTags = map[string]struct{}{
	"Travel":  {},
	"Holiday": {},
	"Event":   {},
}

// UpcomingEventCollections returns every collection whose tag set
// intersects the upcoming-events interest set, preserving input order.
// A collection matching several interest tags appears once.
func UpcomingEventCollections(cols []*models.Collection) []*models.Collection {
	var matched []*models.Collection
	for _, c := range cols {
		if c.HasAnyTag(upcomingEventTags) {
			matched = append(matched, c)
		}
	}
	return matched
}
