package service

import (
	"manhaj_backend/internal/model"
	"testing"
)

func sampleTree() []model.Section {
	return []model.Section{
		{
			UUIDBase: model.UUIDBase{ID: "s1"},
			Title:    "الشبكات",
			Topics: []model.Topic{
				{
					UUIDBase: model.UUIDBase{ID: "t1"},
					Title:    "بروتوكولات",
					Lessons: []model.Lesson{
						{UUIDBase: model.UUIDBase{ID: "l1"}, Title: "TCP/IP"},
						{UUIDBase: model.UUIDBase{ID: "l2"}, Title: "HTTP"},
					},
				},
				{
					UUIDBase: model.UUIDBase{ID: "t2"},
					Title:    "العتاد",
					Lessons: []model.Lesson{
						{UUIDBase: model.UUIDBase{ID: "l3"}, Title: "الموجهات"},
					},
				},
			},
		},
		{
			UUIDBase: model.UUIDBase{ID: "s2"},
			Title:    "البرمجة",
			Topics: []model.Topic{
				{
					UUIDBase: model.UUIDBase{ID: "t3"},
					Title:    "بايثون",
					Lessons: []model.Lesson{
						{
							UUIDBase: model.UUIDBase{ID: "l4"},
							Title:    "الحلقات",
							Media:    []model.LessonMedia{{MediaType: model.MediaCode}},
						},
					},
				},
			},
		},
	}
}

func TestFilterTreeEmptyQueryKeepsEverything(t *testing.T) {
	got := FilterTree(sampleTree(), "", FacetAll)
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	if len(got[0].Topics) != 2 || len(got[0].Topics[0].Lessons) != 2 {
		t.Fatalf("empty query trimmed the tree")
	}
}

func TestFilterTreeLessonMatchKeepsAncestorChain(t *testing.T) {
	got := FilterTree(sampleTree(), "tcp", FacetAll)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if got[0].ID != "s1" {
		t.Fatalf("kept section %s, want s1", got[0].ID)
	}
	if len(got[0].Topics) != 1 || got[0].Topics[0].ID != "t1" {
		t.Fatalf("ancestor chain not preserved: %+v", got[0].Topics)
	}
	if len(got[0].Topics[0].Lessons) != 1 || got[0].Topics[0].Lessons[0].ID != "l1" {
		t.Fatalf("non-matching sibling lessons kept")
	}
}

func TestFilterTreeAncestorMatchKeepsAllDescendants(t *testing.T) {
	got := FilterTree(sampleTree(), "الشبكات", FacetAll)
	if len(got) != 1 {
		t.Fatalf("got %d sections, want 1", len(got))
	}
	if len(got[0].Topics) != 2 {
		t.Fatalf("matching section lost topics: got %d, want 2", len(got[0].Topics))
	}
	if len(got[0].Topics[0].Lessons) != 2 {
		t.Fatalf("matching section lost lessons")
	}
}

func TestFilterTreeCaseInsensitive(t *testing.T) {
	lower := FilterTree(sampleTree(), "http", FacetAll)
	upper := FilterTree(sampleTree(), "HTTP", FacetAll)
	if len(lower) != 1 || len(upper) != 1 {
		t.Fatalf("case sensitivity leaked: lower=%d upper=%d", len(lower), len(upper))
	}
}

func TestFilterTreeNoMatch(t *testing.T) {
	got := FilterTree(sampleTree(), "كيمياء", FacetAll)
	if len(got) != 0 {
		t.Fatalf("got %d sections, want 0", len(got))
	}
}

func TestFilterTreeFacets(t *testing.T) {
	withMedia := FilterTree(sampleTree(), "", FacetWithMedia)
	if len(withMedia) != 1 || withMedia[0].ID != "s2" {
		t.Fatalf("with_media facet = %+v, want only s2", withMedia)
	}

	sectionsOnly := FilterTree(sampleTree(), "", FacetSectionsOnly)
	if len(sectionsOnly) != 2 {
		t.Fatalf("sections_only dropped sections")
	}
	for _, s := range sectionsOnly {
		if s.Topics != nil {
			t.Fatalf("sections_only kept topics on %s", s.ID)
		}
	}

	// Facet composes with the query by intersection.
	both := FilterTree(sampleTree(), "الشبكات", FacetWithMedia)
	if len(both) != 0 {
		t.Fatalf("query+facet intersection = %d sections, want 0", len(both))
	}
}

func TestFilterTreeDoesNotMutateInput(t *testing.T) {
	tree := sampleTree()
	FilterTree(tree, "tcp", FacetAll)
	if len(tree[0].Topics) != 2 || len(tree[0].Topics[0].Lessons) != 2 {
		t.Fatalf("input tree was mutated")
	}

	FilterTree(tree, "", FacetSectionsOnly)
	if tree[0].Topics == nil {
		t.Fatalf("sections_only facet nilled input topics")
	}
}
