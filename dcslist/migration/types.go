package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoServer mirrors a legacy directory listing document. Field names
// follow the old collection schema, not the Postgres one.
type MongoServer struct {
	ID          primitive.ObjectID `bson:"_id"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	AvatarURL   string             `bson:"avatar_url"`
	InviteLink  string             `bson:"invite_link"`
	AgeRating   string             `bson:"age_rating"`

	MemberCount int32 `bson:"member_count"`
	OnlineCount int32 `bson:"online_count"`

	Verified bool  `bson:"verified"`
	Credits  int64 `bson:"credits"`

	Promoted    bool      `bson:"promoted"`
	Pinned      bool      `bson:"pinned"`
	Bumped      bool      `bson:"bumped"`
	BumpExpires time.Time `bson:"bump_expires"`

	Theme string `bson:"theme"`

	WebhookURL         string `bson:"webhook_url"`
	WebhookOnMilestone bool   `bson:"webhook_on_milestone"`
	WebhookOnJoin      bool   `bson:"webhook_on_join"`
	MilestoneThreshold int32  `bson:"milestone_threshold"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoVote mirrors a legacy vote document
type MongoVote struct {
	ID       primitive.ObjectID `bson:"_id"`
	ServerID primitive.ObjectID `bson:"server_id"`
	UserID   string             `bson:"user_id"`
	VotedAt  time.Time          `bson:"voted_at"`
}

// TableStats tracks per-table migration progress
type TableStats struct {
	Read     int `json:"read"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// MigrationStats aggregates a full run
type MigrationStats struct {
	Tables    map[string]*TableStats `json:"tables"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
}
