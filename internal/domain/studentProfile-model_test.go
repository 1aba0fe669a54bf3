package domain

import (
	"testing"
	"time"
)

func completedProfile() *StudentProfile {
	dob := time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC)
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	score := 7.0
	return &StudentProfile{
		FirstName: "Amina", LastName: "Rahman", DateOfBirth: &dob, Nationality: "BD",
		Phone: "+8801711111111", Address: "12 Green Rd", City: "Dhaka", Country: "Bangladesh",
		PassportNumber: "BD1234567", PassportExpiry: &exp,
		EnglishTestType: "IELTS", EnglishTestScore: &score,
		PreferredCountry: "Australia", PreferredCourse: "MSc Computer Science",
		Education: []EducationRecord{{Institution: "Dhaka College", Qualification: "HSC", YearCompleted: 2020}},
	}
}

func TestCalculateProgress(t *testing.T) {
	p := &StudentProfile{}
	if got := p.CalculateProgress(); got != 0 {
		t.Fatalf("empty profile progress = %d, want 0", got)
	}

	p.FirstName = "Amina"
	p.LastName = "Rahman"
	p.Nationality = "BD"
	dob := time.Now()
	p.DateOfBirth = &dob
	if got := p.CalculateProgress(); got != 16 {
		t.Fatalf("one of six sections = %d, want 16", got)
	}

	if got := completedProfile().CalculateProgress(); got != 100 {
		t.Fatalf("completed profile progress = %d, want 100", got)
	}
}

func TestSectionCompletePartialGroup(t *testing.T) {
	p := &StudentProfile{FirstName: "Amina"}
	if p.SectionComplete(SectionPersonal) {
		t.Fatal("personal section with missing fields reported complete")
	}
}

func TestStatusFromProgress(t *testing.T) {
	cases := []struct {
		progress int
		want     ProfileStatus
	}{
		{0, ProfileInvited},
		{16, ProfileIncomplete},
		{83, ProfileIncomplete},
		{100, ProfileCompleted},
	}
	for _, c := range cases {
		if got := StatusFromProgress(c.progress); got != c.want {
			t.Errorf("StatusFromProgress(%d) = %s, want %s", c.progress, got, c.want)
		}
	}
}

func TestNextProfileStatusNeverRegresses(t *testing.T) {
	// deleting fields after completion must not move the status back
	if got := NextProfileStatus(ProfileCompleted, 50); got != ProfileCompleted {
		t.Fatalf("completed profile regressed to %s", got)
	}
	// a submitted profile stays submitted whatever the fields say
	if got := NextProfileStatus(ProfileApplicationSubmitted, 0); got != ProfileApplicationSubmitted {
		t.Fatalf("submitted profile regressed to %s", got)
	}
}

func TestNextProfileStatusNeverDerivesSubmitted(t *testing.T) {
	if got := NextProfileStatus(ProfileCompleted, 100); got == ProfileApplicationSubmitted {
		t.Fatal("derived computation produced application_submitted")
	}
}

func TestProfileLocked(t *testing.T) {
	if ProfileCompleted.Locked() {
		t.Fatal("profile_completed should not be locked")
	}
	if !ProfileApplicationSubmitted.Locked() {
		t.Fatal("application_submitted should be locked")
	}
}
