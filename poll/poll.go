// Package poll runs the community Buy/Hold/Sell poll. Votes live in the
// process-local database and disappear on restart.
package poll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"market-pulse/models"
)

type Option string

const (
	Buy  Option = "Buy"
	Hold Option = "Hold"
	Sell Option = "Sell"
)

var Options = []Option{Buy, Hold, Sell}

var (
	ErrInvalidSymbol = errors.New("invalid stock symbol")
	ErrInvalidOption = errors.New("invalid poll option")
	ErrAlreadyVoted  = errors.New("voter already voted on this stock")
)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeSymbol upper-cases the query, drops whitespace and the ".NS"
// exchange suffix, the same way the stock search box does.
func NormalizeSymbol(raw string) (string, error) {
	s := whitespace.ReplaceAllString(strings.ToUpper(raw), "")
	s = strings.Replace(s, ".NS", "", 1)
	if s == "" {
		return "", ErrInvalidSymbol
	}
	return s, nil
}

// ParseOption accepts buy/hold/sell in any case.
func ParseOption(raw string) (Option, error) {
	for _, o := range Options {
		if strings.EqualFold(strings.TrimSpace(raw), string(o)) {
			return o, nil
		}
	}
	return "", ErrInvalidOption
}

// Result is the public tally of a poll.
type Result struct {
	Symbol      string         `json:"symbol"`
	Votes       map[Option]int `json:"votes"`
	Percentages map[Option]int `json:"percentages"`
	Total       int            `json:"total"`
	Consensus   *string        `json:"consensus"`
	UserVote    *Option        `json:"user_vote,omitempty"`
}

// Summarize derives percentages and consensus from raw counts.
func Summarize(symbol string, votes map[Option]int) Result {
	res := Result{
		Symbol:      symbol,
		Votes:       make(map[Option]int, len(Options)),
		Percentages: make(map[Option]int, len(Options)),
	}
	for _, o := range Options {
		res.Votes[o] = votes[o]
		res.Total += votes[o]
	}
	for _, o := range Options {
		if res.Total == 0 {
			res.Percentages[o] = 0
			continue
		}
		res.Percentages[o] = int(math.Floor(float64(res.Votes[o])*100/float64(res.Total) + 0.5))
	}
	res.Consensus = consensus(res.Votes, res.Total)
	return res
}

func consensus(votes map[Option]int, total int) *string {
	if total == 0 {
		return nil
	}
	max := 0
	for _, o := range Options {
		if votes[o] > max {
			max = votes[o]
		}
	}
	var label string
	switch {
	case votes[Buy] == max:
		label = "Bullish"
	case votes[Sell] == max:
		label = "Bearish"
	default:
		label = "Neutral"
	}
	return &label
}

// Store keeps votes in gorm.
type Store struct {
	DB *gorm.DB
}

// Vote records one vote. A voter can vote once per symbol.
func (s *Store) Vote(ctx context.Context, symbol, voterID string, option Option) error {
	if voterID == "" {
		return fmt.Errorf("vote: empty voter id")
	}
	vote := models.PollVote{Symbol: symbol, VoterID: voterID, Choice: string(option)}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "voter_id"}},
			DoNothing: true,
		}).
		Create(&vote)
	if res.Error != nil {
		return fmt.Errorf("vote: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyVoted
	}
	return nil
}

// Result tallies the poll for symbol. voterID may be empty.
func (s *Store) Result(ctx context.Context, symbol, voterID string) (Result, error) {
	db := s.DB.WithContext(ctx)
	var rows []struct {
		Choice string
		Total  int
	}
	if err := db.Model(&models.PollVote{}).
		Select("choice, COUNT(*) AS total").
		Where("symbol = ?", symbol).
		Group("choice").
		Scan(&rows).Error; err != nil {
		return Result{}, fmt.Errorf("poll result: %w", err)
	}
	counts := make(map[Option]int, len(rows))
	for _, r := range rows {
		counts[Option(r.Choice)] = r.Total
	}
	res := Summarize(symbol, counts)

	if voterID != "" {
		var mine models.PollVote
		err := db.Where("symbol = ? AND voter_id = ?", symbol, voterID).First(&mine).Error
		switch {
		case err == nil:
			o := Option(mine.Choice)
			res.UserVote = &o
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return Result{}, fmt.Errorf("poll result: %w", err)
		}
	}
	return res, nil
}
