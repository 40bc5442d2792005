package nfa

import "testing"

func TestPatchFollowsLinksWithoutRewritingThem(t *testing.T) {
	a := FromStates([]State{
		Match(One('a'), To(1)),
		Match(One('b'), Unlinked()),
		Match(One('c'), Unlinked()),
	})
	a.patch(0, To(2))

	want := []State{
		Match(One('a'), To(1)),
		Match(One('b'), To(2)),
		Match(One('c'), Unlinked()),
	}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchLeavesAcceptAlone(t *testing.T) {
	a := FromStates([]State{
		Branch(Terminal(), Unlinked()),
	})
	a.patch(0, To(9))

	want := []State{Branch(Terminal(), To(9))}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchTerminatesOnCycles(t *testing.T) {
	// a+ before its exit is wired: 0 -> 1 -> 0, exit open on 1.
	a := FromStates([]State{
		Match(One('a'), To(1)),
		Branch(To(0), Unlinked()),
	})
	a.patch(0, Terminal())

	want := []State{
		Match(One('a'), To(1)),
		Branch(To(0), Terminal()),
	}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchSelfLoop(t *testing.T) {
	a := FromStates([]State{Branch(To(0), Unlinked())})
	a.patch(0, Terminal())

	want := []State{Branch(To(0), Terminal())}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchOnlyReachable(t *testing.T) {
	a := FromStates([]State{
		Match(One('a'), Unlinked()),
		Match(One('b'), Unlinked()),
	})
	a.patch(1, Terminal())

	want := []State{
		Match(One('a'), Unlinked()),
		Match(One('b'), Terminal()),
	}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchSharedExitVisitedOnce(t *testing.T) {
	// Both arms of the branch lead into state 2; it is patched once.
	a := FromStates([]State{
		Branch(To(1), To(2)),
		Match(One('a'), To(2)),
		Match(One('b'), Unlinked()),
	})
	a.patch(0, Terminal())

	want := []State{
		Branch(To(1), To(2)),
		Match(One('a'), To(2)),
		Match(One('b'), Terminal()),
	}
	if diff := diffStates(want, a.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}
