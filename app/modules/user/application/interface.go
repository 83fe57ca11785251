package userservice

import (
	"context"

	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
)

// Service defines the user module's application operations.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*userdb.User, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (*userdb.User, error)
	GetUserByDiscordID(ctx context.Context, discordID string) (*userdb.User, error)
	ListUsers(ctx context.Context) ([]userdb.User, error)

	CreateCharacter(ctx context.Context, req CreateCharacterRequest) (*userdb.Character, error)
	UpdateCharacter(ctx context.Context, req UpdateCharacterRequest) (*userdb.Character, error)
	GetCharactersByUser(ctx context.Context, userID int64) ([]userdb.Character, error)
}

// CreateUserRequest registers a Discord account as a guild member.
type CreateUserRequest struct {
	DiscordID       string            `json:"discord_id"`
	DiscordUsername string            `json:"discord_username"`
	DiscordAvatar   *string           `json:"discord_avatar,omitempty"`
	GuildRole       *userdb.GuildRole `json:"guild_role,omitempty"`
}

// UpdateUserRequest changes a member's role or treasury standing.
type UpdateUserRequest struct {
	ID             int64                  `json:"id"`
	GuildRole      *userdb.GuildRole      `json:"guild_role,omitempty"`
	TreasuryStatus *userdb.TreasuryStatus `json:"treasury_status,omitempty"`
}

// CreateCharacterRequest adds a character to a user.
type CreateCharacterRequest struct {
	UserID             int64      `json:"user_id"`
	IGN                string     `json:"ign"`
	Job                userdb.Job `json:"job"`
	StatsScreenshotURL *string    `json:"stats_screenshot_url,omitempty"`
}

// UpdateCharacterRequest edits a character. Nil fields are left unchanged.
type UpdateCharacterRequest struct {
	ID                 int64       `json:"id"`
	IGN                *string     `json:"ign,omitempty"`
	Job                *userdb.Job `json:"job,omitempty"`
	StatsScreenshotURL *string     `json:"stats_screenshot_url,omitempty"`
}
