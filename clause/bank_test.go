package clause

import "errors"
import "testing"

func TestNewBankClauses(t *testing.T) {
	for _, n := range []int{0, -2, 1, 9} {
		if _, err := NewBank(3, n, 100); !errors.Is(err, ErrClauses) {
			t.Errorf("NewBank(3, %d) err = %v, want ErrClauses", n, err)
		}
	}
	b, err := NewBank(3, 6, 100)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 6 {
		t.Fatalf("Len() = %d", b.Len())
	}
	for i := 0; i < 6; i++ {
		if b.Polarity(i) != (i < 3) {
			t.Errorf("clause %d polarity = %v", i, b.Polarity(i))
		}
		if b.Clause(i).Len() != 3 {
			t.Errorf("clause %d has %d features", i, b.Clause(i).Len())
		}
	}
}

func TestEmptyBankVotesZero(t *testing.T) {
	b, err := NewBank(3, 4, 100)
	if err != nil {
		t.Fatal(err)
	}
	if v := b.Vote([]bool{true, false, true}); v != 0 {
		t.Errorf("Vote = %d, want 0", v)
	}
}

func TestVoteSigns(t *testing.T) {
	b, _ := NewBank(1, 4, 5)
	// silence one negative clause on x0 = true
	include(b.Clause(3).Negative(0))
	if v := b.Vote([]bool{true}); v != 1 {
		t.Errorf("Vote(true) = %d, want 1", v)
	}
	// silence both positive clauses on x0 = false
	include(b.Clause(0).Positive(0))
	include(b.Clause(1).Positive(0))
	if v := b.Vote([]bool{false}); v != -2 {
		t.Errorf("Vote(false) = %d, want -2", v)
	}
}

func TestUpdateGatedByThreshold(t *testing.T) {
	b, _ := NewBank(1, 4, 5)
	include(b.Clause(0).Positive(0))
	// silence both negative clauses on x0 = true, the vote is +2
	include(b.Clause(2).Negative(0))
	include(b.Clause(3).Negative(0))
	rng := &counting{value: 0}
	for _, threshold := range []float64{1.0, 2.0, 2.9} {
		b.Update([]bool{true}, true, threshold, 2.0, rng)
		if b.Clause(0).Positive(0).State() != 1 {
			t.Fatalf("threshold %v: gated update moved an automaton", threshold)
		}
	}

	// threshold 3 opens the gate: the firing positive clause reinforces its literal
	b.Update([]bool{true}, true, 3.0, 2.0, rng)
	if b.Clause(0).Positive(0).State() != 2 {
		t.Errorf("positive clause literal state = %d, want 2", b.Clause(0).Positive(0).State())
	}
	if b.Clause(2).Negative(0).State() != 1 || b.Clause(3).Negative(0).State() != 1 {
		t.Error("silent negative clauses changed under type II feedback")
	}
	if rng.draws != 0 {
		t.Errorf("drew %d numbers, want 0", rng.draws)
	}
}

func TestUpdateNegativeTarget(t *testing.T) {
	b, _ := NewBank(1, 2, 5)
	// vote is 0 on any input, above -1, so a negative target trains both clauses.
	// positive clause: type II, but no literal is included, nothing to narrow.
	// negative clause: type I on a firing empty clause, nothing included to reinforce.
	rng := &counting{value: 0}
	b.Update([]bool{false}, false, 1.0, 2.0, rng)
	if rng.draws != 0 {
		t.Errorf("drew %d numbers, want 0", rng.draws)
	}

	// with the negative clause silenced the vote is +1 and the negative clause gets type I widening
	include(b.Clause(1).Positive(0))
	b.Update([]bool{false}, false, 1.0, 2.0, rng)
	if rng.draws != 1 {
		t.Errorf("drew %d numbers, want 1", rng.draws)
	}
	if b.Clause(1).Negative(0).State() != -4 {
		t.Errorf("negative literal state = %d, want -4", b.Clause(1).Negative(0).State())
	}
}

func TestRules(t *testing.T) {
	b, _ := NewBank(2, 2, 5)
	include(b.Clause(0).Positive(1))
	rules := b.Rules()
	if len(rules) != 2 {
		t.Fatalf("Rules() = %v", rules)
	}
	if !rules[0].Polarity || rules[0].Text != "x1" || len(rules[0].Literals) != 1 {
		t.Errorf("rule 0 = %+v", rules[0])
	}
	if rules[1].Polarity || rules[1].Text != "⊤" || len(rules[1].Literals) != 0 {
		t.Errorf("rule 1 = %+v", rules[1])
	}
}
