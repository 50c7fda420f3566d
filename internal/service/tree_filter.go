package service

import (
	"manhaj_backend/internal/model"
	"strings"
)

// TreeFacet narrows a filtered tree view beyond the text query. Facets
// compose with the query by intersection.
type TreeFacet string

const (
	FacetAll          TreeFacet = ""
	FacetWithMedia    TreeFacet = "with_media"
	FacetSectionsOnly TreeFacet = "sections_only"
)

// FilterTree computes a read-only projection of the tree: case-insensitive
// text match on title/description/content at every level, where a match on
// any descendant keeps the whole ancestor chain visible. The input tree is
// never mutated; returned sections carry freshly built child slices.
func FilterTree(sections []model.Section, query string, facet TreeFacet) []model.Section {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Section, 0, len(sections))
	for _, section := range sections {
		filtered, keep := filterSection(section, q)
		if !keep {
			continue
		}
		if facet == FacetWithMedia && !sectionHasMedia(filtered) {
			continue
		}
		if facet == FacetSectionsOnly {
			filtered.Topics = nil
		}
		out = append(out, filtered)
	}
	return out
}

func filterSection(section model.Section, q string) (model.Section, bool) {
	selfMatch := q == "" ||
		containsFold(section.Title, q) ||
		containsFold(section.Description, q)

	kept := make([]model.Topic, 0, len(section.Topics))
	childMatch := false
	for _, topic := range section.Topics {
		filtered, keep := filterTopic(topic, q)
		if keep {
			childMatch = true
			kept = append(kept, filtered)
		}
	}

	if selfMatch {
		// A matching ancestor keeps all of its descendants.
		section.Topics = copyTopics(section.Topics)
		return section, true
	}
	if childMatch {
		section.Topics = kept
		return section, true
	}
	return model.Section{}, false
}

func filterTopic(topic model.Topic, q string) (model.Topic, bool) {
	selfMatch := q == "" ||
		containsFold(topic.Title, q) ||
		containsFold(topic.Content, q)

	kept := make([]model.Lesson, 0, len(topic.Lessons))
	childMatch := false
	for _, lesson := range topic.Lessons {
		if q == "" || containsFold(lesson.Title, q) || containsFold(lesson.Content, q) {
			childMatch = true
			kept = append(kept, lesson)
		}
	}

	if selfMatch {
		topic.Lessons = append([]model.Lesson(nil), topic.Lessons...)
		return topic, true
	}
	if childMatch {
		topic.Lessons = kept
		return topic, true
	}
	return model.Topic{}, false
}

func sectionHasMedia(section model.Section) bool {
	for _, topic := range section.Topics {
		for _, lesson := range topic.Lessons {
			if len(lesson.Media) > 0 {
				return true
			}
		}
	}
	return false
}

func copyTopics(topics []model.Topic) []model.Topic {
	out := make([]model.Topic, len(topics))
	copy(out, topics)
	for i := range out {
		out[i].Lessons = append([]model.Lesson(nil), out[i].Lessons...)
	}
	return out
}

func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
