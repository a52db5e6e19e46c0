package evaluator

import (
	"PokerCoach/internal/game/table"
)

const (
	highCardThreshold = 17
	flushSize         = 5
	straightSize      = 5
	lowAce            = 1 // A 在 A-2-3-4-5 中当作 1
)

// highCards 两张底牌点数之和 >= 17 视为高牌，同时返回较大的那张（点数相同取第二张）
func highCards(hand []table.Card) (bool, table.Card) {
	a, b := hand[0], hand[1]
	high := int(a.Rank())+int(b.Rank()) >= highCardThreshold
	if a.Rank() > b.Rank() {
		return high, a
	}
	return high, b
}

type suitScan struct {
	suit  table.Suit
	count int
	cards []table.Card // 恰好 5 张同花色时为这 5 张
}

// scanSuits 统计每种花色数量，数量相同时按 ♠ > ♥ > ♦ > ♣ 取。
// 只有最多的花色恰好 5 张才算同花，6、7 张不算
func scanSuits(visible []table.Card) suitScan {
	var counts [4]int
	for _, c := range visible {
		counts[c.Suit()]++
	}

	var s suitScan
	for _, suit := range table.Suits {
		if counts[suit] > s.count {
			s.count = counts[suit]
			s.suit = suit
		}
	}
	if s.count != flushSize {
		return s
	}

	s.cards = make([]table.Card, 0, flushSize)
	for _, c := range visible {
		if c.Suit() == s.suit {
			s.cards = append(s.cards, c)
		}
	}
	return s
}

type rankScan struct {
	counts [15]int // 下标为点数 2-14
	same   int     // 同一点数出现的最多次数
	pairs  int     // 出现 >= 2 次的点数个数
}

func scanRanks(visible []table.Card) rankScan {
	var r rankScan
	for _, c := range visible {
		r.counts[c.Rank()]++
	}
	for rank := table.Two; rank <= table.Ace; rank++ {
		n := r.counts[rank]
		if n > r.same {
			r.same = n
		}
		if n >= 2 {
			r.pairs++
		}
	}
	return r
}

func (r rankScan) fullHouse() bool {
	return r.same >= 3 && r.pairs >= 2
}

// combination 按点数重复情况选出的组合及其牌型；没有对子时返回 nil
func (r rankScan) combination(visible []table.Card) (Category, []table.Card) {
	switch {
	case r.fullHouse() && r.same < 4:
		// 先定三条，再从剩下的点数里取最大的对子（两组三条时第二组只取 2 张）
		var trips, pair table.Rank
		for rank := table.Ace; rank >= table.Two; rank-- {
			if r.counts[rank] >= 3 && trips == 0 {
				trips = rank
			} else if r.counts[rank] >= 2 && pair == 0 {
				pair = rank
			}
		}
		cards := cardsOfRank(visible, trips, 3)
		return FullHouse, append(cards, cardsOfRank(visible, pair, 2)...)

	case r.same == 4:
		return FourOfAKind, cardsOfRank(visible, r.highestWithCount(4), 4)

	case r.same == 3:
		return ThreeOfAKind, cardsOfRank(visible, r.highestWithCount(3), 3)

	case r.pairs >= 1:
		var first, second table.Rank
		for rank := table.Ace; rank >= table.Two; rank-- {
			if r.counts[rank] < 2 {
				continue
			}
			if first == 0 {
				first = rank
			} else if second == 0 {
				second = rank
			}
		}
		cards := cardsOfRank(visible, first, 2)
		if second == 0 {
			return OnePair, cards
		}
		return TwoPair, append(cards, cardsOfRank(visible, second, 2)...)
	}
	return HighCard, nil
}

func (r rankScan) highestWithCount(n int) table.Rank {
	for rank := table.Ace; rank >= table.Two; rank-- {
		if r.counts[rank] == n {
			return rank
		}
	}
	return 0
}

// cardsOfRank 按可见顺序取该点数的牌，最多 limit 张
func cardsOfRank(visible []table.Card, rank table.Rank, limit int) []table.Card {
	out := make([]table.Card, 0, limit)
	for _, c := range visible {
		if len(out) == limit {
			break
		}
		if c.Rank() == rank {
			out = append(out, c)
		}
	}
	return out
}

// scanStraight 从大到小找第一个 5 连。A 同时以 14 和 1 参与。
// 找到时返回这 5 个值（降序）；否则返回 nil 和最长的连续长度。
func scanStraight(visible []table.Card) ([]int, int) {
	var present [15]bool
	for _, c := range visible {
		present[c.Rank()] = true
		if c.Rank() == table.Ace {
			present[lowAce] = true
		}
	}

	longest := 0
	for start := int(table.Ace); start >= lowAce; start-- {
		if !present[start] {
			continue
		}
		n := 1
		for v := start - 1; v >= lowAce && n < straightSize && present[v]; v-- {
			n++
		}
		if n == straightSize {
			run := make([]int, straightSize)
			for i := range run {
				run[i] = start - i
			}
			return run, straightSize
		}
		if n > longest {
			longest = n
		}
	}
	return nil, longest
}

// straightCards 每个值取一张牌；有同花时优先取同花花色的牌
func straightCards(visible []table.Card, run []int, flush bool, suit table.Suit) []table.Card {
	out := make([]table.Card, 0, len(run))
	for _, v := range run {
		rank := table.Rank(v)
		if v == lowAce {
			rank = table.Ace
		}

		picked := -1
		for i, c := range visible {
			if c.Rank() != rank {
				continue
			}
			if picked < 0 {
				picked = i
			}
			if flush && c.Suit() == suit {
				picked = i
				break
			}
		}
		if picked >= 0 {
			out = append(out, visible[picked])
		}
	}
	return out
}
