package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// CreateCharacter inserts a character and fills in the generated columns.
func (r *Impl) CreateCharacter(ctx context.Context, db bun.IDB, character *Character) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(character).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

// GetCharacterByID retrieves a character by primary key.
func (r *Impl) GetCharacterByID(ctx context.Context, db bun.IDB, id int64) (*Character, error) {
	db = r.resolveDB(db)
	character := new(Character)
	err := db.NewSelect().
		Model(character).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get character by id: %w", err)
	}
	return character, nil
}

// GetCharactersByUser returns a user's characters in creation order.
func (r *Impl) GetCharactersByUser(ctx context.Context, db bun.IDB, userID int64) ([]Character, error) {
	db = r.resolveDB(db)
	var characters []Character
	err := db.NewSelect().
		Model(&characters).
		Where("c.user_id = ?", userID).
		Order("c.created_at ASC", "c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get characters by user: %w", err)
	}
	return characters, nil
}

// UpdateCharacter applies the non-nil fields and refreshes updated_at.
func (r *Impl) UpdateCharacter(ctx context.Context, db bun.IDB, id int64, updates *CharacterUpdateFields) (*Character, error) {
	db = r.resolveDB(db)
	character := new(Character)

	q := db.NewUpdate().
		Model(character).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*")

	if updates != nil {
		if updates.IGN != nil {
			q = q.Set("ign = ?", *updates.IGN)
		}
		if updates.Job != nil {
			q = q.Set("job = ?", *updates.Job)
		}
		if updates.StatsScreenshotURL != nil {
			q = q.Set("stats_screenshot_url = ?", *updates.StatsScreenshotURL)
		}
	}

	result, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoRowsAffected
	}
	return character, nil
}
