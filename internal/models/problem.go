package models

import "time"

// Problem is one logged problem-solving event. The log is append-only:
// OwnerID and CreatedAt are set once at insert and there is no update
// or delete path.
type Problem struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	OwnerID          string     `bson:"owner_id" json:"ownerId"`
	Title            string     `bson:"title" json:"title"`
	Category         string     `bson:"category,omitempty" json:"category,omitempty"` // topic label, e.g. "Arrays"
	Difficulty       Difficulty `bson:"difficulty" json:"difficulty"`
	Platform         string     `bson:"platform,omitempty" json:"platform,omitempty"`
	TimeSpentMinutes int        `bson:"time_spent_minutes" json:"timeSpentMinutes"`
	Notes            string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Solution         string     `bson:"solution,omitempty" json:"solution,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"createdAt"`
}

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}
