package systems

import "fmt"

// scriptedRand replays fixed draws so division and mutation are predictable.
// Running out of draws panics, which also catches unexpected draws.
type scriptedRand struct {
	ints  []int
	int31 []int32
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("scriptedRand: out of Intn draws")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedRand: draw %d outside [0, %d)", v, n))
	}
	return v
}

func (s *scriptedRand) Int31() int32 {
	if len(s.int31) == 0 {
		panic("scriptedRand: out of Int31 draws")
	}
	v := s.int31[0]
	s.int31 = s.int31[1:]
	return v
}

func (s *scriptedRand) exhausted() bool {
	return len(s.ints) == 0 && len(s.int31) == 0
}
