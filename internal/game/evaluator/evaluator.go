// Package evaluator 评估玩家底牌 + 可见公共牌的牌力，并给出支撑该牌型的最佳组合。
//
// 每次调用都从零计算，不保留任何状态，可并发使用。
package evaluator

import (
	"PokerCoach/internal/game/table"
)

// Result 一次评估的结果
type Result struct {
	Score   Category     `json:"score"`
	Best    []table.Card `json:"best"`    // 1-5 张，总是 Visible 的子集
	Visible []table.Card `json:"visible"` // 参与评估的牌

	High        bool       `json:"high"`        // 两张底牌点数和 >= 17
	SuitCount   int        `json:"suitCount"`   // 最多的花色张数
	FlushSuit   table.Suit `json:"flushSuit"`   // 最多的花色
	Same        int        `json:"same"`        // 同点数最多张数
	Pairs       int        `json:"pairs"`       // 出现 >= 2 次的点数个数
	Flush       bool       `json:"flush"`
	Straight    bool       `json:"straight"`
	FullHouse   bool       `json:"fullHouse"`
	StraightRun int        `json:"straightRun"` // 顺子为 5，否则为最长连续长度
}

// Evaluate 按轮次截断公共牌后评估牌力
func Evaluate(hand, community []table.Card, round table.Round) (Result, error) {
	if err := validate(hand, community, round); err != nil {
		return Result{}, err
	}
	return evaluate(hand, visibleCards(hand, community, round)), nil
}

// best 当前最强牌型及其组合，只有严格更强的牌型才能替换
type best struct {
	category Category
	cards    []table.Card
}

func (b *best) offer(c Category, cards []table.Card) {
	if len(cards) == 0 {
		return
	}
	if b.cards == nil || c > b.category {
		b.category = c
		b.cards = cards
	}
}

func evaluate(hand, visible []table.Card) Result {
	res := Result{Visible: visible}
	var b best

	high, top := highCards(hand)
	res.High = high
	b.offer(HighCard, []table.Card{top})

	suits := scanSuits(visible)
	res.SuitCount = suits.count
	res.FlushSuit = suits.suit
	if suits.cards != nil {
		res.Flush = true
		b.offer(Flush, suits.cards)
	}

	ranks := scanRanks(visible)
	res.Same = ranks.same
	res.Pairs = ranks.pairs
	res.FullHouse = ranks.fullHouse()
	b.offer(ranks.combination(visible))

	run, longest := scanStraight(visible)
	res.StraightRun = longest
	if run != nil {
		res.Straight = true
		category := Straight
		if res.Flush {
			category = StraightFlush
		}
		b.offer(category, straightCards(visible, run, res.Flush, suits.suit))
	}

	res.Score = strength(res)
	res.Best = b.cards
	return res
}

// strength 依次判断，后面的覆盖前面的
func strength(r Result) Category {
	score := HighCard
	if r.Same == 2 {
		score = OnePair
	}
	if r.Pairs >= 2 {
		score = TwoPair
	}
	if r.Same == 3 {
		score = ThreeOfAKind
	}
	if r.Straight {
		score = Straight
	}
	if r.Flush {
		score = Flush
	}
	if r.FullHouse {
		score = FullHouse
	}
	if r.Same == 4 {
		score = FourOfAKind
	}
	if r.Flush && r.Straight {
		score = StraightFlush
	}
	return score
}

// HandEvaluator 持有一手底牌和整副公共牌，按轮次评估。只读，不会修改传入的牌。
type HandEvaluator struct {
	hand      []table.Card
	community []table.Card
}

func NewHandEvaluator(hand, community []table.Card) (*HandEvaluator, error) {
	if err := validate(hand, community, table.PreFlop); err != nil {
		return nil, err
	}
	return &HandEvaluator{
		hand:      append([]table.Card(nil), hand...),
		community: append([]table.Card(nil), community...),
	}, nil
}

// Hand 底牌副本
func (h *HandEvaluator) Hand() []table.Card {
	return append([]table.Card(nil), h.hand...)
}

// VisibleCards 该轮次可见的牌（副本）
func (h *HandEvaluator) VisibleCards(round table.Round) ([]table.Card, error) {
	return VisibleCards(h.hand, h.community, round)
}

func (h *HandEvaluator) Evaluate(round table.Round) (Result, error) {
	return Evaluate(h.hand, h.community, round)
}
