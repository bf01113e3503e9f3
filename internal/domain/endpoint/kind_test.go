package endpoint

import "testing"

func TestAll_IngestionOrder(t *testing.T) {
	got := All()
	want := []Kind{KindNation, KindClub, KindPlayer}
	if len(got) != len(want) {
		t.Fatalf("unexpected kinds: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds[%d]: want=%s got=%s", i, want[i], got[i])
		}
		if err := got[i].Validate(); err != nil {
			t.Fatalf("validate %s: %v", got[i], err)
		}
	}
}

func TestKind_ValidateRejectsUnknown(t *testing.T) {
	if err := Kind("leagues").Validate(); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
