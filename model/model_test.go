package model

import (
	"testing"
	"time"
)

var now = time.Date(2024, 6, 1, 8, 45, 0, 0, time.UTC)

func TestIsHTTPURL(t *testing.T) {
	tests := map[string]bool{
		"https://institute.org/register": true,
		"http://a.b":                     true,
		"ftp://institute.org":            false,
		"institute.org":                  false,
		"https://localhost":              false,
		"":                               false,
	}
	for in, want := range tests {
		if got := IsHTTPURL(in); got != want {
			t.Errorf("IsHTTPURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEventPrepare(t *testing.T) {
	e := &Event{Title: " Open Day ", Description: "x", Date: "2024-07-04", Time: "10:30", Medium: "Online"}
	e.Prepare(now)

	if e.Title != "Open Day" || e.Medium != "online" || e.Status != EventActive {
		t.Fatalf("normalisation failed: %+v", e)
	}
	if want := time.Date(2024, 7, 4, 10, 30, 0, 0, time.UTC); !e.Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", e.Timestamp, want)
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}
}

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		field string
	}{
		{"missing title", Event{Description: "d", Date: "2024-01-01"}, "title"},
		{"bad date", Event{Title: "t", Description: "d", Date: "01/02/2024"}, "date"},
		{"bad time", Event{Title: "t", Description: "d", Date: "2024-01-01", Time: "25:00"}, "time"},
		{"bad medium", Event{Title: "t", Description: "d", Date: "2024-01-01", Medium: "radio"}, "medium"},
		{"bad link", Event{Title: "t", Description: "d", Date: "2024-01-01", RegistrationLink: "register-here"}, "registrationLink"},
		{"author without name", Event{Title: "t", Description: "d", Date: "2024-01-01", Authors: []Author{{Designation: "Prof"}}}, "authors[0].name"},
		{"bad status", Event{Title: "t", Description: "d", Date: "2024-01-01", Status: "archived"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.event
			e.Prepare(now)
			err := e.Validate()
			fe, ok := err.(FieldErrors)
			if !ok {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if _, ok := fe[tt.field]; !ok {
				t.Fatalf("expected %q in %v", tt.field, fe)
			}
		})
	}
}

func TestNewsDefaults(t *testing.T) {
	n := &NewsBlog{Title: "t", Description: "d", Category: "Campus"}
	n.Prepare(now)
	if n.Status != NewsDraft || n.Date != "2024-06-01" || n.Time != "08:45" {
		t.Fatalf("defaults not applied: %+v", n)
	}

	err := n.Validate()
	fe, ok := err.(FieldErrors)
	if !ok || fe["authors"] == "" {
		t.Fatalf("news without authors must fail on authors, got %v", err)
	}

	n.Authors = []Author{{Name: " Dr. Menon "}}
	n.Images = []string{"https://cdn.institute.org/a.jpg"}
	n.Prepare(now)
	if err := n.Validate(); err != nil {
		t.Fatalf("valid news rejected: %v", err)
	}
	if n.Authors[0].Name != "Dr. Menon" {
		t.Fatalf("author not trimmed: %q", n.Authors[0].Name)
	}
}

func TestNewAuthor(t *testing.T) {
	a, err := NewAuthor(" Prof. Rao ", "Director", "https://cdn.institute.org/rao.png", "")
	if err != nil || a.Name != "Prof. Rao" {
		t.Fatalf("NewAuthor = %+v, %v", a, err)
	}
	if _, err := NewAuthor("  ", "", "", ""); err == nil {
		t.Fatal("blank name accepted")
	}
	if _, err := NewAuthor("Rao", "", "not a url", ""); err == nil {
		t.Fatal("bad image accepted")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil || !d.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date-only: %v %v", d, err)
	}
	d, err = ParseDate("2024-02-29T10:00:00+05:30")
	if err != nil || d.Location() != time.UTC || d.Hour() != 4 {
		t.Fatalf("rfc3339: %v %v", d, err)
	}
	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFieldErrorsKeepFirstMessage(t *testing.T) {
	fe := FieldErrors{}
	if fe.Err() != nil {
		t.Fatal("empty FieldErrors should be nil error")
	}
	fe.Add("title", "first")
	fe.Add("title", "second")
	fe.Add("date", "bad")
	if fe["title"] != "first" || fe.Error() != "date: bad; title: first" {
		t.Fatalf("unexpected %v / %q", fe, fe.Error())
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || Role("root").Valid() {
		t.Fatal("role validation wrong")
	}
	if NormalizeEmail("  Someone@Institute.ORG ") != "someone@institute.org" {
		t.Fatal("email not normalised")
	}
}
