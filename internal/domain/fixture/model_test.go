package fixture

import "testing"

func TestIsLive_CoversInPlayCodes(t *testing.T) {
	t.Parallel()

	liveCodes := []string{"1H", "2H", "HT", "ET", "BT", "P", "SUSP", "INT", "LIVE"}
	for _, code := range liveCodes {
		if !IsLive(code) {
			t.Errorf("IsLive(%q) = false, want true", code)
		}
		if IsFinished(code) {
			t.Errorf("IsFinished(%q) = true, want false", code)
		}
		if IsScheduled(code) {
			t.Errorf("IsScheduled(%q) = true, want false", code)
		}
	}
}

func TestIsFinished_CoversFinalCodes(t *testing.T) {
	t.Parallel()

	finishedCodes := []string{"FT", "AET", "PEN"}
	for _, code := range finishedCodes {
		if !IsFinished(code) {
			t.Errorf("IsFinished(%q) = false, want true", code)
		}
		if IsLive(code) {
			t.Errorf("IsLive(%q) = true, want false", code)
		}
		if IsScheduled(code) {
			t.Errorf("IsScheduled(%q) = true, want false", code)
		}
	}
}

func TestIsScheduled_ByExclusion(t *testing.T) {
	t.Parallel()

	scheduledCodes := []string{"NS", "TBD", "PST", "CANC", "ABD", ""}
	for _, code := range scheduledCodes {
		if !IsScheduled(code) {
			t.Errorf("IsScheduled(%q) = false, want true", code)
		}
	}
}

func TestIsLive_NormalizesCase(t *testing.T) {
	t.Parallel()

	if !IsLive(" 1h ") {
		t.Fatal("IsLive(\" 1h \") = false, want true")
	}
	if !IsFinished("ft") {
		t.Fatal("IsFinished(\"ft\") = false, want true")
	}
}

func TestIsAbandonedLike_SeparatesFromPreKickoff(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"PST", "CANC", "ABD", "AWD", "WO"} {
		if !IsAbandonedLike(code) {
			t.Errorf("IsAbandonedLike(%q) = false, want true", code)
		}
		// Still scheduled under the three-way classification.
		if !IsScheduled(code) {
			t.Errorf("IsScheduled(%q) = false, want true", code)
		}
	}

	if IsAbandonedLike("NS") {
		t.Fatal("IsAbandonedLike(\"NS\") = true, want false")
	}
}
