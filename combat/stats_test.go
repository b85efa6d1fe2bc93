package combat

import "testing"

func TestCritChance(t *testing.T) {
	if c := CritChance(0); c != 0.05 {
		t.Errorf("CritChance(0) = %v, want 0.05", c)
	}
	prev := 0.0
	for agi := 0; agi <= 200; agi++ {
		c := CritChance(agi)
		if c < prev {
			t.Fatalf("CritChance not monotonic at agility %d: %v < %v", agi, c, prev)
		}
		if c < 0 || c > 0.75 {
			t.Fatalf("CritChance(%d) = %v, out of [0, 0.75]", agi, c)
		}
		prev = c
	}
	if c := CritChance(100); c != 0.75 {
		t.Errorf("CritChance(100) = %v, want cap 0.75", c)
	}
}

func TestDodgeChance(t *testing.T) {
	if c := DodgeChance(0); c != 0 {
		t.Errorf("DodgeChance(0) = %v, want 0", c)
	}
	prev := 0.0
	for agi := 0; agi <= 200; agi++ {
		c := DodgeChance(agi)
		if c < prev {
			t.Fatalf("DodgeChance not monotonic at agility %d: %v < %v", agi, c, prev)
		}
		if c < 0 || c > 0.50 {
			t.Fatalf("DodgeChance(%d) = %v, out of [0, 0.50]", agi, c)
		}
		prev = c
	}
	if c := DodgeChance(100); c != 0.50 {
		t.Errorf("DodgeChance(100) = %v, want cap 0.50", c)
	}
}

func TestSneakCritChance(t *testing.T) {
	if c := SneakCritChance(0); c != 0.20 {
		t.Errorf("SneakCritChance(0) = %v, want 0.20", c)
	}
	if base, sneak := CritChance(10), SneakCritChance(10); sneak <= base {
		t.Errorf("sneak crit %v not above base crit %v", sneak, base)
	}
	if c := SneakCritChance(100); c != 0.75 {
		t.Errorf("SneakCritChance(100) = %v, want cap 0.75", c)
	}
}

func TestPhysicalDamage(t *testing.T) {
	r := &stubRoller{rolls: []int{4}}
	if got := PhysicalDamage(r, 3); got != 12 {
		t.Errorf("PhysicalDamage(roll 4, strength 3) = %d, want 12", got)
	}
}

func TestAbilityPower(t *testing.T) {
	if got := AbilityPower(15, 1.5); got != 22 {
		t.Errorf("AbilityPower(15, 1.5) = %d, want 22 (truncated)", got)
	}
	if got := AbilityPower(0, 1.5); got != 0 {
		t.Errorf("AbilityPower(0, 1.5) = %d, want 0", got)
	}
}
