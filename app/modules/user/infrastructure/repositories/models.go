package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// GuildRole is a member's rank inside the guild.
type GuildRole string

const (
	RoleGuildMaster       GuildRole = "guild_master"
	RoleViceGuildMaster   GuildRole = "vice_guild_master"
	RoleSeniorGuildMember GuildRole = "senior_guild_member"
	RoleMember            GuildRole = "member"
	RoleRecruit           GuildRole = "recruit"
)

// GuildRoles lists every role, highest first.
var GuildRoles = []GuildRole{
	RoleGuildMaster,
	RoleViceGuildMaster,
	RoleSeniorGuildMember,
	RoleMember,
	RoleRecruit,
}

// TreasuryStatus tracks whether a member is up to date with guild fees.
type TreasuryStatus string

const (
	TreasuryPaid    TreasuryStatus = "paid"
	TreasuryPending TreasuryStatus = "pending"
	TreasuryOverdue TreasuryStatus = "overdue"
	TreasuryExempt  TreasuryStatus = "exempt"
)

var TreasuryStatuses = []TreasuryStatus{TreasuryPaid, TreasuryPending, TreasuryOverdue, TreasuryExempt}

// Job is a Dragon Nest class specialization.
type Job string

// Jobs lists every playable specialization grouped by base class.
var Jobs = []Job{
	// Warrior
	"gladiator", "moonlord", "barbarian", "destroyer",
	// Archer
	"sniper", "artillery", "tempest", "wind_walker",
	// Sorceress
	"saleana", "elestra", "smasher", "majesty",
	// Cleric
	"guardian", "crusader", "saint", "inquisitor",
	// Academic
	"shooting_star", "gear_master", "adept", "physician",
	// Kali
	"dark_summoner", "soul_eater", "blade_dancer", "spirit_dancer",
	// Assassin
	"ripper", "raven", "light_fury", "abyss_walker",
	// Lencea
	"flurry", "sting_breezer", "avalanche", "randgrid",
	// Machina
	"defensio", "ruina", "impactor", "luster",
	// Knight / Vandar
	"mystic_knight", "grand_master", "duelist", "trickster", "revenant", "maverick",
}

// User is a guild member identified by their Discord account.
type User struct {
	bun.BaseModel   `bun:"table:users,alias:u"`
	ID              int64          `bun:"id,pk,autoincrement" json:"id"`
	DiscordID       string         `bun:"discord_id,notnull,unique" json:"discord_id"`
	DiscordUsername string         `bun:"discord_username,notnull" json:"discord_username"`
	DiscordAvatar   *string        `bun:"discord_avatar" json:"discord_avatar"`
	GuildRole       GuildRole      `bun:"guild_role,notnull,default:'recruit'" json:"guild_role"`
	TreasuryStatus  TreasuryStatus `bun:"treasury_status,notnull,default:'pending'" json:"treasury_status"`
	CreatedAt       time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Character is an in-game character owned by one user.
type Character struct {
	bun.BaseModel      `bun:"table:characters,alias:c"`
	ID                 int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID             int64     `bun:"user_id,notnull" json:"user_id"`
	IGN                string    `bun:"ign,notnull" json:"ign"`
	Job                Job       `bun:"job,notnull" json:"job"`
	StatsScreenshotURL *string   `bun:"stats_screenshot_url" json:"stats_screenshot_url"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// UserUpdateFields holds the optional columns of a user update. Nil fields are left unchanged.
type UserUpdateFields struct {
	GuildRole      *GuildRole
	TreasuryStatus *TreasuryStatus
}

// IsEmpty reports whether no field is set.
func (u *UserUpdateFields) IsEmpty() bool {
	return u == nil || (u.GuildRole == nil && u.TreasuryStatus == nil)
}

// CharacterUpdateFields holds the optional columns of a character update.
type CharacterUpdateFields struct {
	IGN                *string
	Job                *Job
	StatsScreenshotURL *string
}
