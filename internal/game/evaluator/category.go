package evaluator

// Category 牌型等级 0-8，数值越大越强。皇家同花顺不单独计分。
type Category int

const (
	HighCard      Category = iota // 高牌
	OnePair                       // 一对
	TwoPair                       // 两对
	ThreeOfAKind                  // 三条
	Straight                      // 顺子
	Flush                         // 同花
	FullHouse                     // 葫芦
	FourOfAKind                   // 四条
	StraightFlush                 // 同花顺
)

var categoryNames = []string{
	"high card", "one pair", "two pair", "three of a kind", "straight",
	"flush", "full house", "four of a kind", "straight flush",
}

func (c Category) String() string {
	if c >= HighCard && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}
