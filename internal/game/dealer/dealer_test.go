package dealer

import (
	"testing"
	"time"

	"PokerCoach/internal/game/table"
)

// 工具：检查是否有重复牌
func hasDuplicates(cards []table.Card) bool {
	seen := make(map[table.Card]bool)
	for _, c := range cards {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// ✅ 牌组初始化：52 张、无重复、4 花色 13 点数
func TestNewDeck(t *testing.T) {
	d := NewDealer(time.Now().UnixNano())
	d.NewDeck()

	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	if hasDuplicates(d.deck) {
		t.Fatalf("deck should not contain duplicates")
	}

	suits := make(map[table.Suit]bool)
	ranks := make(map[table.Rank]bool)
	for _, c := range d.deck {
		if !c.Valid() {
			t.Fatalf("invalid card in deck: %v", c)
		}
		suits[c.Suit()] = true
		ranks[c.Rank()] = true
	}
	if len(suits) != 4 || len(ranks) != 13 {
		t.Fatalf("expected 4 suits x 13 ranks, got %d x %d", len(suits), len(ranks))
	}
}

// ✅ 相同种子发出相同的牌，不同种子不同
func TestSeededDeal(t *testing.T) {
	deal := func(seed int64) []table.Card {
		d := NewDealer(seed)
		d.NewDeck()
		return d.DealCommunity(7)
	}

	a, b := deal(42), deal(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical deals for same seed")
		}
	}

	c := deal(99)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected deal with different seed to differ")
	}
}

// ✅ 底牌：每人 2 张，互不重复
func TestDealHoleCards(t *testing.T) {
	d := NewDealer(1)
	d.NewDeck()
	players := []string{"p-1", "p-2", "p-3"}
	hands := d.DealHoleCards(players)

	all := []table.Card{}
	for _, p := range players {
		if len(hands[p]) != 2 {
			t.Fatalf("player %s should have 2 cards, got %d", p, len(hands[p]))
		}
		all = append(all, hands[p]...)
	}
	if hasDuplicates(all) {
		t.Fatalf("hole cards contain duplicates")
	}
	if d.Remaining() != 52-6 {
		t.Fatalf("expected remaining deck 46, got %d", d.Remaining())
	}
}

// ✅ 教学局一次性发 2 + 5 张
func TestDealCoachingHand(t *testing.T) {
	d := NewDealer(2)
	d.NewDeck()

	hand := d.DealHoleCards([]string{"p-1"})["p-1"]
	board := d.DealCommunity(5)

	if len(hand) != 2 || len(board) != 5 {
		t.Fatalf("expected 2+5 cards, got %d+%d", len(hand), len(board))
	}
	if hasDuplicates(append(append([]table.Card{}, hand...), board...)) {
		t.Fatalf("coaching hand contains duplicates")
	}
	if d.Remaining() != 52-7 {
		t.Fatalf("expected 45 remaining, got %d", d.Remaining())
	}
}

// ✅ 牌堆发完自动补牌
func TestDrawResetsDeck(t *testing.T) {
	d := NewDealer(3)
	d.NewDeck()
	for i := 0; i < 52; i++ {
		d.draw()
	}
	card := d.draw()
	if !card.Valid() {
		t.Fatalf("invalid card returned after deck reset")
	}
	if d.Remaining() != 51 {
		t.Fatalf("expected fresh deck minus one card, got %d", d.Remaining())
	}
}
