package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Round 下注轮次，决定可见的公共牌数量
type Round int

const (
	PreFlop  Round = 0
	Flop     Round = 1
	Turn     Round = 2
	River    Round = 3
	Showdown Round = 4
)

var roundNames = map[Round]string{
	PreFlop:  "preflop",
	Flop:     "flop",
	Turn:     "turn",
	River:    "river",
	Showdown: "showdown",
}

func (r Round) String() string {
	if name, ok := roundNames[r]; ok {
		return name
	}
	if r > Showdown {
		return "showdown"
	}
	return fmt.Sprintf("round(%d)", int(r))
}

// CommunityVisible 该轮次可见的公共牌张数 (river 及之后全部可见)
func (r Round) CommunityVisible() int {
	switch {
	case r <= PreFlop:
		return 0
	case r == Flop:
		return 3
	case r == Turn:
		return 4
	default:
		return 5
	}
}

// Next 下一轮，showdown 之后不再前进
func (r Round) Next() Round {
	if r >= Showdown {
		return Showdown
	}
	return r + 1
}

// ParseRound 接受名称 ("flop") 或数字 ("1")
func ParseRound(s string) (Round, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range roundNames {
		if name == s {
			return r, nil
		}
	}
	switch s {
	case "pre-flop", "pre":
		return PreFlop, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid round: %q", s)
	}
	return Round(n), nil
}

func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// UnmarshalJSON 接受 2 或 "turn"
func (r *Round) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Round(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRound(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
