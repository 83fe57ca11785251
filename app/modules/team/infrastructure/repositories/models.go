package teamdb

import (
	"time"

	"github.com/uptrace/bun"
)

// DefaultMaxMembers is the capacity of a team created without one.
const DefaultMaxMembers = 5

// Team is a standing group with a fixed member capacity.
type Team struct {
	bun.BaseModel    `bun:"table:teams,alias:t"`
	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	Name             string    `bun:"name,notnull" json:"name"`
	Description      *string   `bun:"description" json:"description"`
	CreatedBy        int64     `bun:"created_by,notnull" json:"created_by"`
	DiscordChannelID *string   `bun:"discord_channel_id" json:"discord_channel_id"`
	MaxMembers       int       `bun:"max_members,notnull" json:"max_members"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// TeamSummary is a team with its live member count.
type TeamSummary struct {
	Team        `bun:",extend"`
	MemberCount int `bun:"member_count,scanonly" json:"member_count"`
}

// TeamMember is one user's membership in one team.
type TeamMember struct {
	bun.BaseModel `bun:"table:team_members,alias:tm"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	TeamID        int64     `bun:"team_id,notnull" json:"team_id"`
	UserID        int64     `bun:"user_id,notnull" json:"user_id"`
	JoinedAt      time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp" json:"joined_at"`
}
