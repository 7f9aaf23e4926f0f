// Package dice parses and evaluates die roll expressions such as "3d6+4".
//
// An expression is a sequence of terms joined by + and - operators. Each
// term is either a die roll ("3d6", case-insensitive "d") or an integer
// modifier ("4"). Whitespace is ignored anywhere in the expression; the
// first term defaults to positive when unsigned. Anything outside that
// grammar is rejected with a parse error.
//
// RollDice parses and evaluates in one call:
//
//	roll, err := dice.RollDice("3d6 + 4")
//	if err != nil {
//		// expression did not parse
//	}
//	fmt.Println(roll.Total, roll)
//
// A Roller draws an unbounded stream of independent rolls from the same
// parsed expression; every Next call consumes fresh randomness:
//
//	roller, err := dice.NewRoller("3d6")
//	for i := 0; i < 6; i++ {
//		fmt.Println(roller.Next().Total)
//	}
//
// RollRange produces a single uniform integer in an inclusive range.
//
// Randomized entry points seed a math/rand generator from crypto/rand per
// call; the WithRng variants accept a caller-owned generator for
// deterministic use.
package dice
