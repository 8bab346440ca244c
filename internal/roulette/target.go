package roulette

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type Kind string

const (
	KindStraight  Kind = "straight"
	KindSplit     Kind = "split"
	KindStreet    Kind = "street"
	KindCorner    Kind = "corner"
	KindLine      Kind = "line"
	KindDozen     Kind = "dozen"
	KindColumn    Kind = "column"
	KindEvenMoney Kind = "even-money"
	KindBasket    Kind = "basket"
	KindSnake     Kind = "snake"
)

type EvenMoney string

const (
	EvenRed   EvenMoney = "red"
	EvenBlack EvenMoney = "black"
	EvenOdd   EvenMoney = "odd"
	EvenEven  EvenMoney = "even"
	EvenLow   EvenMoney = "low"
	EvenHigh  EvenMoney = "high"
)

var (
	basketNumbers = []int{0, 1, 2, 3}
	snakeNumbers  = []int{1, 5, 9, 12, 14, 16, 19, 23, 27, 30, 32, 34}
)

// Target is the set of pockets a wager covers. Exactly one of Numbers, Index
// or Even is meaningful, depending on Kind.
type Target struct {
	Kind    Kind      `json:"kind"`
	Numbers []int     `json:"numbers,omitempty"`
	Index   int       `json:"index,omitempty"`
	Even    EvenMoney `json:"even,omitempty"`
}

func Straight(n int) (Target, error) {
	return NewTarget(KindStraight, []int{n}, 0, "")
}

func Split(a, b int) (Target, error) {
	return NewTarget(KindSplit, []int{a, b}, 0, "")
}

func Street(a, b, c int) (Target, error) {
	return NewTarget(KindStreet, []int{a, b, c}, 0, "")
}

func Corner(a, b, c, d int) (Target, error) {
	return NewTarget(KindCorner, []int{a, b, c, d}, 0, "")
}

func Line(numbers [6]int) (Target, error) {
	return NewTarget(KindLine, numbers[:], 0, "")
}

func Dozen(index int) (Target, error) {
	return NewTarget(KindDozen, nil, index, "")
}

func Column(index int) (Target, error) {
	return NewTarget(KindColumn, nil, index, "")
}

func EvenChance(kind EvenMoney) (Target, error) {
	return NewTarget(KindEvenMoney, nil, 0, kind)
}

func Basket() Target {
	return Target{Kind: KindBasket, Numbers: slices.Clone(basketNumbers)}
}

func Snake() Target {
	return Target{Kind: KindSnake, Numbers: slices.Clone(snakeNumbers)}
}

// NewTarget validates the wager geometry once, at sale time, and returns a
// normalized target with sorted numbers.
func NewTarget(kind Kind, numbers []int, index int, even EvenMoney) (Target, error) {
	t := Target{Kind: kind}
	switch kind {
	case KindStraight, KindSplit, KindStreet, KindCorner, KindLine:
		nums := slices.Clone(numbers)
		slices.Sort(nums)
		if err := checkGeometry(kind, nums); err != nil {
			return Target{}, err
		}
		t.Numbers = nums
	case KindDozen, KindColumn:
		if index < 1 || index > 3 {
			return Target{}, fmt.Errorf("%s index must be 1..3, got %d", kind, index)
		}
		t.Index = index
	case KindEvenMoney:
		switch even {
		case EvenRed, EvenBlack, EvenOdd, EvenEven, EvenLow, EvenHigh:
		default:
			return Target{}, fmt.Errorf("unknown even-money option %q", even)
		}
		t.Even = even
	case KindBasket:
		return Basket(), nil
	case KindSnake:
		return Snake(), nil
	default:
		return Target{}, fmt.Errorf("unknown bet kind %q", kind)
	}
	return t, nil
}

var sizes = map[Kind]int{
	KindStraight: 1,
	KindSplit:    2,
	KindStreet:   3,
	KindCorner:   4,
	KindLine:     6,
}

func checkGeometry(kind Kind, nums []int) error {
	if len(nums) != sizes[kind] {
		return fmt.Errorf("%s needs %d numbers, got %d", kind, sizes[kind], len(nums))
	}
	for i, n := range nums {
		if !ValidNumber(n) {
			return fmt.Errorf("number %d is out of range", n)
		}
		if i > 0 && nums[i-1] == n {
			return fmt.Errorf("number %d repeats", n)
		}
	}

	ok := true
	switch kind {
	case KindSplit:
		ok = adjacent(nums[0], nums[1])
	case KindStreet:
		// a table row, or one of the two zero trios
		ok = slices.Equal(nums, []int{0, 1, 2}) || slices.Equal(nums, []int{0, 2, 3}) ||
			(nums[0] > 0 && nums[0]%3 == 1 && nums[1] == nums[0]+1 && nums[2] == nums[0]+2)
	case KindCorner:
		a := nums[0]
		ok = slices.Equal(nums, basketNumbers) ||
			(a > 0 && a%3 != 0 && nums[1] == a+1 && nums[2] == a+3 && nums[3] == a+4)
	case KindLine:
		a := nums[0]
		ok = a > 0 && a%3 == 1 && a <= 31
		for i := 1; ok && i < 6; i++ {
			ok = nums[i] == a+i
		}
	}
	if !ok {
		return fmt.Errorf("numbers %v do not form a %s", nums, kind)
	}
	return nil
}

// adjacent reports whether two pockets share an edge on the betting layout.
func adjacent(a, b int) bool {
	if a == 0 {
		return b >= 1 && b <= 3
	}
	rowA, colA := (a-1)/3, (a-1)%3
	rowB, colB := (b-1)/3, (b-1)%3
	switch {
	case rowA == rowB:
		return colB-colA == 1 || colA-colB == 1
	case colA == colB:
		return rowB-rowA == 1 || rowA-rowB == 1
	}
	return false
}

// Contains is the win rule: it reports whether the pocket n with color c
// satisfies the target.
func (t Target) Contains(n int, c Color) bool {
	if !ValidNumber(n) {
		return false
	}
	switch t.Kind {
	case KindStraight, KindSplit, KindStreet, KindCorner, KindLine, KindBasket, KindSnake:
		return slices.Contains(t.Numbers, n)
	case KindDozen:
		lo := (t.Index-1)*12 + 1
		return n >= lo && n <= lo+11
	case KindColumn:
		if n == 0 {
			return false
		}
		return n%3 == t.Index%3
	case KindEvenMoney:
		if n == 0 {
			return false
		}
		switch t.Even {
		case EvenRed:
			return c == Red
		case EvenBlack:
			return c == Black
		case EvenOdd:
			return n%2 == 1
		case EvenEven:
			return n%2 == 0
		case EvenLow:
			return n <= 18
		case EvenHigh:
			return n >= 19
		}
	}
	return false
}

var ordinals = [...]string{"", "1st", "2nd", "3rd"}

// Describe renders the human label printed on slips, e.g. "Corner (8,9,11,12)".
func (t Target) Describe() string {
	switch t.Kind {
	case KindStraight:
		if len(t.Numbers) == 1 {
			return "Straight Up on " + strconv.Itoa(t.Numbers[0])
		}
	case KindSplit, KindStreet, KindCorner:
		return titleKind(t.Kind) + " (" + joinInts(t.Numbers) + ")"
	case KindLine:
		return "Six Line (" + joinInts(t.Numbers) + ")"
	case KindDozen:
		if t.Index >= 1 && t.Index <= 3 {
			lo := (t.Index-1)*12 + 1
			return fmt.Sprintf("%s Dozen (%d-%d)", ordinals[t.Index], lo, lo+11)
		}
	case KindColumn:
		if t.Index >= 1 && t.Index <= 3 {
			return ordinals[t.Index] + " Column"
		}
	case KindEvenMoney:
		return titleKind(Kind(t.Even)) + " Numbers"
	case KindBasket:
		return "Basket (0,1,2,3)"
	case KindSnake:
		return "Snake (" + joinInts(t.Numbers) + ")"
	}
	return string(t.Kind)
}

// MarshalTarget encodes the target for the bets.target column.
func MarshalTarget(t Target) ([]byte, error) {
	return json.Marshal(t)
}

func UnmarshalTarget(data []byte) (Target, error) {
	var t Target
	if err := json.Unmarshal(data, &t); err != nil {
		return Target{}, fmt.Errorf("decode bet target: %w", err)
	}
	return t, nil
}

func titleKind(k Kind) string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
