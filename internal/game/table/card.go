package table

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit 花色 (0-3)，数值越大在同花判定中优先级越高
type Suit int

const (
	Club    Suit = iota // ♣
	Diamond             // ♦
	Heart               // ♥
	Spade               // ♠
)

var suitSymbols = []string{"♣", "♦", "♥", "♠"}
var suitCodes = []string{"c", "d", "h", "s"}

func (s Suit) String() string {
	if s.Valid() {
		return suitSymbols[s]
	}
	return "?"
}

// Code 单字母花色 (c/d/h/s)
func (s Suit) Code() string {
	if s.Valid() {
		return suitCodes[s]
	}
	return "?"
}

func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

// Suits 按同花优先级从高到低排列
var Suits = []Suit{Spade, Heart, Diamond, Club}

// Rank 点数 2-14 (A=14)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankCodes = map[Rank]string{
	Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Code 单字符点数 (2-9, T, J, Q, K, A)
func (r Rank) Code() string {
	if v, ok := rankCodes[r]; ok {
		return v
	}
	return r.String()
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card 一张牌，只读。零值不是合法的牌。
type Card struct {
	suit Suit
	rank Rank
}

// NewCard 校验花色和点数后创建一张牌
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("invalid card suit=%d rank=%d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard 用于常量和测试
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Suit() Suit { return c.suit }
func (c Card) Rank() Rank { return c.rank }

// Valid 零值或越界的牌返回 false
func (c Card) Valid() bool {
	return c.suit.Valid() && c.rank.Valid()
}

func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Code 返回 "As"、"Td" 这类短格式
func (c Card) Code() string {
	return c.rank.Code() + c.suit.Code()
}

// ParseCard 将字符串 (如 "As", "Td", "10h") 转换为 Card
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	// 花色取最后一个字符
	var suit Suit
	switch s[len(s)-1] {
	case 's', 'S':
		suit = Spade
	case 'h', 'H':
		suit = Heart
	case 'd', 'D':
		suit = Diamond
	case 'c', 'C':
		suit = Club
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch r := strings.ToUpper(s[:len(s)-1]); r {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		rank = Rank(r[0] - '0')
	}
	return NewCard(suit, rank)
}

// ParseCards 解析空格或逗号分隔的牌，如 "As Kd" / "Qh,Jc,Ts"
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Codes 批量转短格式，用于日志和存储
func Codes(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}

type cardJSON struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{Suit: int(c.suit), Rank: int(c.rank)})
}

// UnmarshalJSON 接受 {"suit":3,"rank":14} 或 "As"
func (c *Card) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err == nil {
		parsed, err := ParseCard(code)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCard(Suit(raw.Suit), Rank(raw.Rank))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
