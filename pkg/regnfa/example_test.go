package regnfa_test

import (
	"fmt"

	"github.com/KromDaniel/regnfa/pkg/regnfa"
)

func ExampleCompile() {
	a, err := regnfa.Compile("a+b")
	if err != nil {
		panic(err)
	}
	for i, s := range a.States() {
		p, _ := a.PriorityAt(i)
		fmt.Println(i, s, p)
	}
	fmt.Println("start:", a.StartIndex())
	// Output:
	// 0 Match(One('a'), Linked(1)) 97
	// 1 Branch(Linked(0), Linked(2)) 97
	// 2 Match(One('b'), Accept) 98
	// start: 0
}

func ExampleAutomaton_Priority() {
	a := regnfa.FromStates([]regnfa.State{
		regnfa.Match(regnfa.One('a'), regnfa.Terminal()),
	})
	fmt.Println(a.Priority(regnfa.Branch(regnfa.To(0), regnfa.Terminal())))
	fmt.Println(a.Priority(regnfa.Match(regnfa.Any(), regnfa.Terminal())))
	// Output:
	// 97
	// 0
}
