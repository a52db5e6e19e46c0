package dealer

import (
	"math/rand"

	"PokerCoach/internal/game/table"
)

// Dealer 只负责洗牌与发牌（无规则判断）
type Dealer struct {
	deck []table.Card
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		deck: make([]table.Card, 0, 52),
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// NewDeck 初始化一副牌并洗牌
func (d *Dealer) NewDeck() {
	d.deck = makeDeck()
	d.shuffle()
}

func makeDeck() []table.Card {
	deck := make([]table.Card, 0, 52)
	for s := table.Club; s <= table.Spade; s++ {
		for r := table.Two; r <= table.Ace; r++ {
			deck = append(deck, table.MustCard(s, r))
		}
	}
	return deck
}

// Fisher-Yates
func (d *Dealer) shuffle() {
	for i := len(d.deck) - 1; i > 0; i-- {
		j := d.rnd.Intn(i + 1)
		d.deck[i], d.deck[j] = d.deck[j], d.deck[i]
	}
}

// Remaining 牌堆剩余张数
func (d *Dealer) Remaining() int {
	return len(d.deck)
}

// DealHoleCards 给每个玩家发 2 张底牌，返回 player -> []Card
func (d *Dealer) DealHoleCards(players []string) map[string][]table.Card {
	out := make(map[string][]table.Card, len(players))
	// 轮流发牌，先每人一张，再每人第二张
	for i := 0; i < 2; i++ {
		for _, p := range players {
			out[p] = append(out[p], d.draw())
		}
	}
	return out
}

// DealCommunity 发公共牌 n 张（不烧牌）
func (d *Dealer) DealCommunity(n int) []table.Card {
	out := make([]table.Card, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.draw())
	}
	return out
}

func (d *Dealer) draw() table.Card {
	if len(d.deck) == 0 {
		// should not happen if properly invoked
		d.NewDeck()
	}
	c := d.deck[0]
	d.deck = d.deck[1:]
	return c
}
