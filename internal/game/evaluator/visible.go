package evaluator

import (
	"PokerCoach/internal/game/table"
)

const (
	handSize         = 2
	maxCommunitySize = 5
)

// VisibleCards 底牌 + 当前轮次可见的公共牌。
// 超出部分从公共牌尾部丢弃：preflop 2 张，flop 5 张，turn 6 张，river 及之后 7 张。
func VisibleCards(hand, community []table.Card, round table.Round) ([]table.Card, error) {
	if err := validate(hand, community, round); err != nil {
		return nil, err
	}
	return visibleCards(hand, community, round), nil
}

func visibleCards(hand, community []table.Card, round table.Round) []table.Card {
	n := round.CommunityVisible()
	if n > len(community) {
		n = len(community)
	}
	out := make([]table.Card, 0, len(hand)+n)
	out = append(out, hand...)
	out = append(out, community[:n]...)
	return out
}

func validate(hand, community []table.Card, round table.Round) error {
	if len(hand) != handSize {
		return errInvalidInput("hand must have exactly %d cards, got %d", handSize, len(hand))
	}
	if len(community) > maxCommunitySize {
		return errInvalidInput("at most %d community cards, got %d", maxCommunitySize, len(community))
	}
	if round < table.PreFlop {
		return errInvalidInput("round must be >= 0, got %d", int(round))
	}

	seen := make(map[table.Card]bool, len(hand)+len(community))
	for _, cards := range [][]table.Card{hand, community} {
		for _, c := range cards {
			if !c.Rank().Valid() {
				return errInvalidInput("rank %d out of range 2..14", int(c.Rank()))
			}
			if !c.Suit().Valid() {
				return errInvalidInput("unknown suit %d", int(c.Suit()))
			}
			if seen[c] {
				return errInvalidInput("duplicate card %s", c)
			}
			seen[c] = true
		}
	}
	return nil
}
