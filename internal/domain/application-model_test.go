package domain

import "testing"

func TestApplicationForwardTransitions(t *testing.T) {
	allowed := []struct{ from, to ApplicationStatus }{
		{ApplicationPending, ApplicationUnderReview},
		{ApplicationUnderReview, ApplicationApproved},
		{ApplicationUnderReview, ApplicationRejected},
	}
	for _, c := range allowed {
		if !c.from.CanTransition(c.to) {
			t.Errorf("%s -> %s should be allowed", c.from, c.to)
		}
	}
}

func TestApplicationBlockedTransitions(t *testing.T) {
	blocked := []struct{ from, to ApplicationStatus }{
		{ApplicationPending, ApplicationApproved},
		{ApplicationPending, ApplicationRejected},
		{ApplicationUnderReview, ApplicationPending},
		{ApplicationApproved, ApplicationRejected},
		{ApplicationApproved, ApplicationPending},
		{ApplicationRejected, ApplicationUnderReview},
	}
	for _, c := range blocked {
		if c.from.CanTransition(c.to) {
			t.Errorf("%s -> %s should be blocked without an override", c.from, c.to)
		}
	}
}

func TestValidApplicationStatus(t *testing.T) {
	if !ValidApplicationStatus(ApplicationUnderReview) {
		t.Fatal("under_review should be valid")
	}
	if ValidApplicationStatus("archived") {
		t.Fatal("archived is not a known status")
	}
}
