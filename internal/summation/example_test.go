package summation

import (
	"context"
	"fmt"
)

// ExampleEngine_Sum sums small integers, which every schedule adds up
// exactly, with four workers.
func ExampleEngine_Sum() {
	e, err := New(
		WithTerms(TermRange{Lo: -5, Hi: 10, Scale: 1}),
		WithWorkers(4),
		WithSchedule(Static),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sum, err := e.Sum(context.Background())
	if err != nil {
		fmt.Printf("Sum error: %v\n", err)
		return
	}
	fmt.Println(sum)
	// Output:
	// 40
}

// ExampleParseSchedule lists the accepted schedule names.
func ExampleParseSchedule() {
	for _, name := range ScheduleNames() {
		s, _ := ParseSchedule(name)
		fmt.Println(s)
	}
	// Output:
	// static
	// dynamic
	// guided
}
