package domain

import "testing"

func TestRegistrationTransitions(t *testing.T) {
	if !RegistrationPending.CanTransition(RegistrationConfirmed) {
		t.Fatal("pending -> confirmed should be allowed")
	}
	if !RegistrationPending.CanTransition(RegistrationCancelled) {
		t.Fatal("pending -> cancelled should be allowed")
	}
	if !RegistrationConfirmed.CanTransition(RegistrationCancelled) {
		t.Fatal("confirmed -> cancelled should be allowed")
	}
	if RegistrationConfirmed.CanTransition(RegistrationPending) {
		t.Fatal("confirmed -> pending should be blocked")
	}
	if RegistrationCancelled.CanTransition(RegistrationPending) ||
		RegistrationCancelled.CanTransition(RegistrationConfirmed) {
		t.Fatal("cancelled is terminal")
	}
}
