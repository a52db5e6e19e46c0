package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PokerCoach/internal/game/dealer"
	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/game/table"
	"PokerCoach/internal/websocket"
)

// mockHub 实现 HubInterface，记录消息
type mockHub struct {
	sentToPlayer map[string][]websocket.OutgoingMessage
	broadcasts   []websocket.OutgoingMessage
}

func newMockHub() *mockHub {
	return &mockHub{sentToPlayer: make(map[string][]websocket.OutgoingMessage)}
}

func (h *mockHub) BroadcastToPlayers(players []string, msg websocket.OutgoingMessage) {
	h.broadcasts = append(h.broadcasts, msg)
}

func (h *mockHub) SendToPlayer(player string, msg websocket.OutgoingMessage) {
	h.sentToPlayer[player] = append(h.sentToPlayer[player], msg)
}

func (h *mockHub) ClientByPlayer(player string) (*websocket.Client, bool) {
	return nil, false
}

func (h *mockHub) Close() {}

func (h *mockHub) events(player string) []string {
	out := []string{}
	for _, m := range h.sentToPlayer[player] {
		out = append(out, m.Event)
	}
	return out
}

func TestEngineStart_DealsCoachingHand(t *testing.T) {
	h := newMockHub()
	tbl := table.New("t-1", "p-1")
	eng := NewEngine(tbl, h)
	eng.Dealer = dealer.NewDealer(42) // deterministic seed for test

	res, err := eng.Start()
	require.NoError(t, err)

	assert.Len(t, tbl.Hand, 2)
	assert.Len(t, tbl.Community, 5)
	assert.Equal(t, table.PreFlop, tbl.Round)
	assert.Len(t, res.Visible, 2, "preflop only sees the hand")

	assert.Equal(t, []string{"deal_hole", "hand_strength"}, h.events("p-1"))
	report := h.sentToPlayer["p-1"][1].Data.(Report)
	assert.Equal(t, "preflop", report.State)
	assert.Empty(t, report.Community)
	assert.Empty(t, report.Reference)
}

func TestEngineNextRound_WalksAllRounds(t *testing.T) {
	h := newMockHub()
	tbl := table.New("t-1", "p-1")
	eng := NewEngine(tbl, h)
	eng.Dealer = dealer.NewDealer(7)
	_, err := eng.Start()
	require.NoError(t, err)

	wantVisible := []int{5, 6, 7, 7}
	for i, want := range wantVisible {
		res, err := eng.NextRound()
		require.NoError(t, err)
		assert.Len(t, res.Visible, want, "step %d", i)
	}
	assert.True(t, tbl.Finished())

	_, err = eng.NextRound()
	assert.ErrorIs(t, err, ErrHandFinished)

	assert.Equal(t, []string{
		"deal_hole", "hand_strength",
		"community", "hand_strength", // flop
		"community", "hand_strength", // turn
		"community", "hand_strength", // river
		"showdown", "hand_strength",
	}, h.events("p-1"))

	flop := h.sentToPlayer["p-1"][2].Data.(map[string]any)
	assert.Len(t, flop["new"], 3)
	turn := h.sentToPlayer["p-1"][4].Data.(map[string]any)
	assert.Len(t, turn["new"], 1)
}

func TestEngineReportsHandStrength(t *testing.T) {
	h := newMockHub()
	tbl := table.New("t-2", "p-2")
	tbl.Hand, _ = table.ParseCards("6s 6d")
	tbl.Community, _ = table.ParseCards("5d Qd 5c Td Kd")
	eng := NewEngine(tbl, h)

	res, err := eng.NextRound() // flop: 6s 6d 5d Qd 5c
	require.NoError(t, err)
	assert.Equal(t, evaluator.TwoPair, res.Score)

	_, err = eng.NextRound() // turn
	require.NoError(t, err)
	res, err = eng.NextRound() // river: 5 张方块
	require.NoError(t, err)
	assert.Equal(t, evaluator.Flush, res.Score)

	msgs := h.sentToPlayer["p-2"]
	last := msgs[len(msgs)-1].Data.(Report)
	assert.Equal(t, "river", last.State)
	assert.Equal(t, "flush", last.Category)
	assert.ElementsMatch(t, []string{"6d", "5d", "Qd", "Td", "Kd"}, last.Best)
	assert.NotEmpty(t, last.Reference)
}

func TestEngineWithoutHub(t *testing.T) {
	tbl := table.New("t-3", "p-3")
	eng := NewEngine(tbl, nil)

	_, err := eng.Start()
	require.NoError(t, err)
	_, err = eng.NextRound()
	require.NoError(t, err)

	res, err := eng.Evaluate()
	require.NoError(t, err)
	assert.Len(t, res.Visible, 5)
}

func TestEngineRejectsBrokenTable(t *testing.T) {
	tbl := table.New("t-4", "p-4")
	tbl.Hand, _ = table.ParseCards("As")
	eng := NewEngine(tbl, nil)

	_, err := eng.Evaluate()
	var invalid evaluator.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
