package util

import (
	"manhaj_backend/internal/model"
	"reflect"
	"testing"
)

func TestToggleRole(t *testing.T) {
	cases := []struct {
		name    string
		current []string
		toggle  string
		want    []string
	}{
		{"select all clears specifics", []string{"teacher", "student"}, "all", []string{"all"}},
		{"specific role evicts all", []string{"all"}, "teacher", []string{"teacher"}},
		{"add second role", []string{"teacher"}, "student", []string{"teacher", "student"}},
		{"deselect role", []string{"teacher", "student"}, "student", []string{"teacher"}},
		{"deselect last reverts to all", []string{"teacher"}, "teacher", []string{"all"}},
		{"toggle all when already all", []string{"all"}, "all", []string{"all"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToggleRole(tc.current, tc.toggle)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ToggleRole(%v, %q) = %v, want %v", tc.current, tc.toggle, got, tc.want)
			}
		})
	}
}

func TestToggleRoleNeverMixesAllWithSpecific(t *testing.T) {
	states := [][]string{
		{"all"},
		{"teacher"},
		{"teacher", "student"},
		{"student", "school_admin"},
	}
	clicks := []string{"all", "teacher", "student", "school_admin"}

	for _, state := range states {
		for _, click := range clicks {
			got := ToggleRole(state, click)
			if len(got) == 0 {
				t.Fatalf("ToggleRole(%v, %q) returned empty set", state, click)
			}
			hasAll := false
			for _, r := range got {
				if r == model.RoleAll {
					hasAll = true
				}
			}
			if hasAll && len(got) > 1 {
				t.Fatalf("ToggleRole(%v, %q) = %v mixes all with specifics", state, click, got)
			}
		}
	}
}

func TestNormalizeRoles(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{nil, []string{"all"}},
		{[]string{}, []string{"all"}},
		{[]string{"all"}, []string{"all"}},
		{[]string{"all", "teacher"}, []string{"teacher"}},
		{[]string{"teacher", "teacher", ""}, []string{"teacher"}},
	}
	for _, tc := range cases {
		if got := NormalizeRoles(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("NormalizeRoles(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRolesAllow(t *testing.T) {
	if !RolesAllow([]string{"all"}, model.Student) {
		t.Fatalf("all should admit students")
	}
	if !RolesAllow([]string{"teacher"}, model.Teacher) {
		t.Fatalf("teacher set should admit teachers")
	}
	if RolesAllow([]string{"teacher"}, model.Student) {
		t.Fatalf("teacher set should not admit students")
	}
}
