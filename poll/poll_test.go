package poll

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-pulse/database"
	"market-pulse/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return &Store{DB: db}
}

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reliance", "RELIANCE"},
		{" tata motors ", "TATAMOTORS"},
		{"infy.ns", "INFY"},
		{"TCS.NS", "TCS"},
	}
	for _, tt := range tests {
		got, err := NormalizeSymbol(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := NormalizeSymbol("   ")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestParseOption(t *testing.T) {
	o, err := ParseOption(" buy ")
	require.NoError(t, err)
	assert.Equal(t, Buy, o)

	_, err = ParseOption("short")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestSummarize(t *testing.T) {
	empty := Summarize("TCS", nil)
	assert.Equal(t, 0, empty.Total)
	assert.Nil(t, empty.Consensus)
	assert.Equal(t, map[Option]int{Buy: 0, Hold: 0, Sell: 0}, empty.Percentages)

	tests := []struct {
		votes     map[Option]int
		consensus string
	}{
		{map[Option]int{Buy: 2, Hold: 1, Sell: 1}, "Bullish"},
		{map[Option]int{Buy: 1, Sell: 3}, "Bearish"},
		{map[Option]int{Hold: 2, Sell: 1}, "Neutral"},
		{map[Option]int{Buy: 2, Sell: 2}, "Bullish"},
		{map[Option]int{Hold: 2, Sell: 2}, "Bearish"},
	}
	for _, tt := range tests {
		res := Summarize("TCS", tt.votes)
		require.NotNil(t, res.Consensus)
		assert.Equal(t, tt.consensus, *res.Consensus, "%v", tt.votes)
	}

	res := Summarize("TCS", map[Option]int{Buy: 1, Hold: 1, Sell: 1})
	assert.Equal(t, map[Option]int{Buy: 33, Hold: 33, Sell: 33}, res.Percentages)

	res = Summarize("TCS", map[Option]int{Buy: 1, Sell: 1})
	assert.Equal(t, 50, res.Percentages[Buy])

	res = Summarize("TCS", map[Option]int{Buy: 2, Hold: 1})
	assert.Equal(t, 67, res.Percentages[Buy])
	assert.Equal(t, 33, res.Percentages[Hold])
}

func TestStoreVoteAndResult(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Vote(ctx, "TCS", "voter-a", Buy))
	require.NoError(t, s.Vote(ctx, "TCS", "voter-b", Buy))
	require.NoError(t, s.Vote(ctx, "TCS", "voter-c", Sell))
	require.NoError(t, s.Vote(ctx, "INFY", "voter-a", Hold))

	err := s.Vote(ctx, "TCS", "voter-a", Sell)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	res, err := s.Result(ctx, "TCS", "voter-c")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Votes[Buy])
	assert.Equal(t, 1, res.Votes[Sell])
	assert.Equal(t, 67, res.Percentages[Buy])
	require.NotNil(t, res.Consensus)
	assert.Equal(t, "Bullish", *res.Consensus)
	require.NotNil(t, res.UserVote)
	assert.Equal(t, Sell, *res.UserVote)

	res, err = s.Result(ctx, "RELIANCE", "voter-a")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Nil(t, res.Consensus)
	assert.Nil(t, res.UserVote)
}

func TestStoreVoteRequiresVoter(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.Vote(context.Background(), "TCS", "", Buy))
}

func TestStoreVoteExistingRowIsAlreadyVoted(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.DB.Create(&models.PollVote{Symbol: "HDFC", VoterID: "voter-a", Choice: string(Hold)}).Error)

	err := s.Vote(ctx, "HDFC", "voter-a", Buy)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	res, err := s.Result(ctx, "HDFC", "voter-a")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.NotNil(t, res.UserVote)
	assert.Equal(t, Hold, *res.UserVote)
}

func TestStoreConcurrentVotesOneWins(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	const voters = 8
	errs := make([]error, voters)
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Vote(ctx, "SBIN", "same-voter", Options[i%len(Options)])
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyVoted)
	}
	assert.Equal(t, 1, accepted)

	res, err := s.Result(ctx, "SBIN", "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}
