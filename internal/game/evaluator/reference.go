package evaluator

import (
	"github.com/chehsunliu/poker"

	"PokerCoach/internal/game/table"
)

// Reference 用 chehsunliu/poker 的标准评估给出对照结果（rank 越小越强）。
// 只支持 5-7 张牌，其他数量返回 ok=false。
func Reference(visible []table.Card) (rank int32, name string, ok bool) {
	if len(visible) < 5 || len(visible) > 7 {
		return 0, "", false
	}
	cards := make([]poker.Card, len(visible))
	for i, c := range visible {
		cards[i] = poker.NewCard(c.Code())
	}
	rank = poker.Evaluate(cards)
	return rank, poker.RankString(rank), true
}
