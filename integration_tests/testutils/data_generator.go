package testutils

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	userservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/application"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
)

// TestDataGenerator creates guild members and characters through the user service.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	users userservice.Service
}

// NewTestDataGenerator creates a generator with an optional seed.
func NewTestDataGenerator(users userservice.Service, seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), users: users}
}

// SeedUsers registers count members with unique Discord ids.
func (g *TestDataGenerator) SeedUsers(ctx context.Context, count int) ([]*userdb.User, error) {
	out := make([]*userdb.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := g.users.CreateUser(ctx, userservice.CreateUserRequest{
			DiscordID:       fmt.Sprintf("%d%s", i+1, g.faker.Numerify("#########")),
			DiscordUsername: fmt.Sprintf("member_%d_%s", i+1, g.faker.Numerify("###")),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %d: %w", i, err)
		}
		out = append(out, user)
	}
	return out, nil
}

// SeedCharacter gives user one character with a random job.
func (g *TestDataGenerator) SeedCharacter(ctx context.Context, user *userdb.User) (*userdb.Character, error) {
	jobs := make([]string, len(userdb.Jobs))
	for i, j := range userdb.Jobs {
		jobs[i] = string(j)
	}
	return g.users.CreateCharacter(ctx, userservice.CreateCharacterRequest{
		UserID: user.ID,
		IGN:    fmt.Sprintf("Hero%d%s", user.ID, g.faker.Numerify("##")),
		Job:    userdb.Job(g.faker.RandomString(jobs)),
	})
}

// Title returns a short random title.
func (g *TestDataGenerator) Title() string {
	return fmt.Sprintf("%s %s", g.faker.RandomString([]string{"Raid", "Nest", "Guild", "PvP", "Farm"}), g.faker.Numerify("###"))
}

// Description returns a short random sentence.
func (g *TestDataGenerator) Description() string {
	return g.faker.Sentence(g.faker.Number(3, 8))
}
