package migration

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ellavondegurechaff/godcs/dcslist/database/models"
)

func Test_convertServer(t *testing.T) {
	oid := primitive.NewObjectID()

	t.Run("full document", func(t *testing.T) {
		created := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
		ms := MongoServer{
			ID:                 oid,
			OwnerID:            "owner-1",
			Name:               "Gaming Hub",
			Description:        "all things gaming",
			AgeRating:          "18_plus",
			MemberCount:        4200,
			OnlineCount:        310,
			Verified:           true,
			Credits:            7,
			Promoted:           true,
			MilestoneThreshold: 5000,
			CreatedAt:          created,
			UpdatedAt:          created.Add(time.Hour),
		}

		got := convertServer(ms)

		if got.ID != oid.Hex() {
			t.Errorf("id = %q, want %q", got.ID, oid.Hex())
		}
		if got.AgeRating != models.AgeRating18Plus {
			t.Errorf("age rating = %q, want 18_plus", got.AgeRating)
		}
		if got.Credits != 7 || !got.IsVerified || !got.IsPromoted {
			t.Errorf("flags lost in conversion: %+v", got)
		}
		if !got.CreatedAt.Equal(created) {
			t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
		}
	})

	t.Run("unknown age rating defaults to all_ages", func(t *testing.T) {
		got := convertServer(MongoServer{ID: oid, OwnerID: "o", Name: "n", AgeRating: "mature"})
		if got.AgeRating != models.AgeRatingAllAges {
			t.Errorf("age rating = %q, want all_ages", got.AgeRating)
		}
	})

	t.Run("stale bump is dropped", func(t *testing.T) {
		got := convertServer(MongoServer{
			ID:          oid,
			OwnerID:     "o",
			Name:        "n",
			Bumped:      true,
			BumpExpires: time.Now().Add(-time.Hour),
		})
		if got.IsBumped {
			t.Error("stale bump survived conversion")
		}
		if !got.BumpExpiresAt.IsZero() {
			t.Errorf("stale bump expiry survived: %v", got.BumpExpiresAt)
		}
	})

	t.Run("live bump is kept", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		got := convertServer(MongoServer{
			ID:          oid,
			OwnerID:     "o",
			Name:        "n",
			Bumped:      true,
			BumpExpires: expires,
		})
		if !got.IsBumped || !got.BumpExpiresAt.Equal(expires) {
			t.Errorf("live bump lost: %+v", got)
		}
	})

	t.Run("zero milestone threshold gets the default", func(t *testing.T) {
		got := convertServer(MongoServer{ID: oid, OwnerID: "o", Name: "n"})
		if got.MilestoneThreshold != 1000 {
			t.Errorf("milestone threshold = %d, want 1000", got.MilestoneThreshold)
		}
	})
}

func Test_cleanseString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "with\nnewline", want: "with\nnewline"},
		{in: "bell\x07char", want: "bellchar"},
		{in: "bad\xffutf8", want: "badutf8"},
	}

	for _, tt := range tests {
		if got := cleanseString(tt.in); got != tt.want {
			t.Errorf("cleanseString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
