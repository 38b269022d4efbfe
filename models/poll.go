package models

import "time"

type PollVote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Symbol    string    `json:"symbol" gorm:"uniqueIndex:idx_poll_voter"`
	VoterID   string    `json:"voter_id" gorm:"uniqueIndex:idx_poll_voter"`
	Choice    string    `json:"choice"`
	CreatedAt time.Time `json:"created_at"`
}
