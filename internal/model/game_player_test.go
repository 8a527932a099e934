package model

import "testing"

func TestValidPlayerStatus(t *testing.T) {
	for _, s := range []string{PlayerPending, PlayerApproved, PlayerRejected} {
		if !ValidPlayerStatus(s) {
			t.Errorf("ValidPlayerStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "APPROVED", "Cancelled", "approved "} {
		if ValidPlayerStatus(s) {
			t.Errorf("ValidPlayerStatus(%q) = true, want false", s)
		}
	}
}
