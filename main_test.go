package main

import (
	"sort"
	"testing"

	"instituteapi/repository"
)

func TestPurgeTargetsCoverContentOnly(t *testing.T) {
	targets := contentStores{}.purgeTargets()

	if _, ok := targets[repository.UsersCollection]; ok {
		t.Fatal("users are never soft-deleted and must not be purged")
	}

	got := make([]string, 0, len(targets))
	for name := range targets {
		got = append(got, name)
	}
	sort.Strings(got)
	want := []string{
		repository.EventsCollection,
		repository.JournalArticlesCollection,
		repository.JournalVolumesCollection,
		repository.NewsBlogsCollection,
		repository.PublicationsCollection,
		repository.ResourcePersonsCollection,
		repository.StaffCollection,
	}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("targets = %v, want %v", got, want)
		}
	}
}
