package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	cases := map[string]Card{
		"As":  MustCard(Spade, Ace),
		"td":  MustCard(Diamond, Ten),
		"10h": MustCard(Heart, Ten),
		"2c":  MustCard(Club, Two),
		"KH":  MustCard(Heart, King),
	}
	for in, want := range cases {
		got, err := ParseCard(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "A", "1s", "Ax", "11h", "Zs"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As Kd,Qh  Jc")
	require.NoError(t, err)
	assert.Equal(t, []string{"As", "Kd", "Qh", "Jc"}, Codes(cards))

	_, err = ParseCards("As Xx")
	assert.Error(t, err)
}

func TestNewCardValidates(t *testing.T) {
	_, err := NewCard(Spade, 1)
	assert.Error(t, err)
	_, err = NewCard(Spade, 15)
	assert.Error(t, err)
	_, err = NewCard(Suit(4), Ace)
	assert.Error(t, err)

	c, err := NewCard(Heart, Queen)
	require.NoError(t, err)
	assert.Equal(t, Queen, c.Rank())
	assert.Equal(t, Heart, c.Suit())
	assert.Equal(t, "Q♥", c.String())
	assert.Equal(t, "Qh", c.Code())
	assert.False(t, Card{}.Valid())
}

func TestCardJSON(t *testing.T) {
	c := MustCard(Spade, Ace)
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"suit":3,"rank":14}`, string(data))

	var back Card
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	var fromCode Card
	require.NoError(t, json.Unmarshal([]byte(`"Td"`), &fromCode))
	assert.Equal(t, MustCard(Diamond, Ten), fromCode)

	var bad Card
	assert.Error(t, json.Unmarshal([]byte(`{"suit":3,"rank":1}`), &bad))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0, PreFlop.CommunityVisible())
	assert.Equal(t, 3, Flop.CommunityVisible())
	assert.Equal(t, 4, Turn.CommunityVisible())
	assert.Equal(t, 5, River.CommunityVisible())
	assert.Equal(t, 5, Round(9).CommunityVisible())

	assert.Equal(t, Showdown, River.Next())
	assert.Equal(t, Showdown, Showdown.Next())

	r, err := ParseRound("Turn")
	require.NoError(t, err)
	assert.Equal(t, Turn, r)
	r, err = ParseRound("3")
	require.NoError(t, err)
	assert.Equal(t, River, r)
	_, err = ParseRound("-1")
	assert.Error(t, err)
	_, err = ParseRound("later")
	assert.Error(t, err)

	var fromJSON Round
	require.NoError(t, json.Unmarshal([]byte(`"flop"`), &fromJSON))
	assert.Equal(t, Flop, fromJSON)
}

func TestTableVisibleCommunity(t *testing.T) {
	tbl := New("t-1", "p-1")
	tbl.Community, _ = ParseCards("2c 3d 4h 5s 6c")

	assert.Empty(t, tbl.VisibleCommunity())
	tbl.Round = Flop
	assert.Equal(t, []string{"2c", "3d", "4h"}, Codes(tbl.VisibleCommunity()))
	tbl.Round = Turn
	assert.Len(t, tbl.VisibleCommunity(), 4)
	tbl.Round = Showdown
	assert.Len(t, tbl.VisibleCommunity(), 5)
	assert.True(t, tbl.Finished())

	// 返回副本
	v := tbl.VisibleCommunity()
	v[0] = MustCard(Spade, Ace)
	assert.Equal(t, "2c", tbl.Community[0].Code())
}
