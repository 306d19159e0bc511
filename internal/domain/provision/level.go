package provision

import (
	"math"
	"strconv"
	"strings"
)

// Level is a recursion depth. The instance running this code is at some
// Level; the service it provisions is at Level.Next().
type Level int

// ParseLevel reads a level from its configured string form. Empty,
// non-numeric and negative input all yield 0.
func ParseLevel(raw string) Level {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return Level(n)
}

// Next returns the level of a child provisioned from l. Saturates at
// math.MaxInt so the result is never negative.
func (l Level) Next() Level {
	if l >= math.MaxInt {
		return l
	}
	return l + 1
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}
