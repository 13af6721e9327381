package store

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/avc-dev/url-registry/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// userColumns maps mutable user fields to table columns
var userColumns = map[model.UserField]string{
	model.FieldHashedPassword: "hashed_password",
	model.FieldURLLimit:       "url_limit",
	model.FieldAdmin:          "admin",
}

// DatabaseStore keeps both tables in PostgreSQL.
// Conditional inserts rely on ON CONFLICT DO NOTHING, so the primary key
// constraint decides the single winner among concurrent writers.
type DatabaseStore struct {
	pool *pgxpool.Pool
}

func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

func (ds *DatabaseStore) InsertURL(ctx context.Context, mapping model.URLMapping) error {
	query := `
		INSERT INTO urls (short_code, original_url, owner)
		VALUES ($1, $2, $3)
		ON CONFLICT (short_code) DO NOTHING
	`

	tag, err := ds.pool.Exec(ctx, query, string(mapping.Code), string(mapping.OriginalURL), mapping.Owner)
	if err != nil {
		return unavailable(fmt.Errorf("failed to insert url: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("key %s: %w", mapping.Code, ErrAlreadyExists)
	}

	return nil
}

func (ds *DatabaseStore) GetURL(ctx context.Context, code model.Code) (model.URLMapping, error) {
	query := `
		SELECT original_url, owner
		FROM urls
		WHERE short_code = $1
	`

	var originalURL, owner string
	err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&originalURL, &owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.URLMapping{}, fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return model.URLMapping{}, unavailable(fmt.Errorf("failed to read url: %w", err))
	}

	return model.URLMapping{
		Code:        code,
		OriginalURL: model.URL(originalURL),
		Owner:       owner,
	}, nil
}

// ScanURLs streams the table; rows are read as the caller iterates
func (ds *DatabaseStore) ScanURLs(ctx context.Context) iter.Seq2[model.URLMapping, error] {
	return func(yield func(model.URLMapping, error) bool) {
		rows, err := ds.pool.Query(ctx, `SELECT short_code, original_url, owner FROM urls ORDER BY short_code`)
		if err != nil {
			yield(model.URLMapping{}, unavailable(fmt.Errorf("failed to scan urls: %w", err)))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var code, originalURL, owner string
			if err := rows.Scan(&code, &originalURL, &owner); err != nil {
				yield(model.URLMapping{}, unavailable(fmt.Errorf("failed to read url row: %w", err)))
				return
			}

			mapping := model.URLMapping{
				Code:        model.Code(code),
				OriginalURL: model.URL(originalURL),
				Owner:       owner,
			}
			if !yield(mapping, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.URLMapping{}, unavailable(fmt.Errorf("failed to scan urls: %w", err)))
		}
	}
}

func (ds *DatabaseStore) DeleteURL(ctx context.Context, code model.Code) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM urls WHERE short_code = $1`, string(code))
	if err != nil {
		return unavailable(fmt.Errorf("failed to delete url: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) CountURLsByOwner(ctx context.Context, owner string) (int, error) {
	var count int
	err := ds.pool.QueryRow(ctx, `SELECT COUNT(*) FROM urls WHERE owner = $1`, owner).Scan(&count)
	if err != nil {
		return 0, unavailable(fmt.Errorf("failed to count urls: %w", err))
	}

	return count, nil
}

func (ds *DatabaseStore) InsertUser(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (username, hashed_password, url_limit, admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`

	tag, err := ds.pool.Exec(ctx, query, user.Username, user.HashedPassword, user.URLLimit, user.Admin)
	if err != nil {
		return unavailable(fmt.Errorf("failed to insert user: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.Username, ErrAlreadyExists)
	}

	return nil
}

func (ds *DatabaseStore) GetUser(ctx context.Context, username string) (model.User, error) {
	query := `
		SELECT hashed_password, url_limit, admin
		FROM users
		WHERE username = $1
	`

	user := model.User{Username: username}
	err := ds.pool.QueryRow(ctx, query, username).Scan(&user.HashedPassword, &user.URLLimit, &user.Admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return model.User{}, unavailable(fmt.Errorf("failed to read user: %w", err))
	}

	return user, nil
}

func (ds *DatabaseStore) ScanUsers(ctx context.Context) iter.Seq2[model.User, error] {
	return func(yield func(model.User, error) bool) {
		rows, err := ds.pool.Query(ctx, `SELECT username, hashed_password, url_limit, admin FROM users ORDER BY username`)
		if err != nil {
			yield(model.User{}, unavailable(fmt.Errorf("failed to scan users: %w", err)))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var user model.User
			if err := rows.Scan(&user.Username, &user.HashedPassword, &user.URLLimit, &user.Admin); err != nil {
				yield(model.User{}, unavailable(fmt.Errorf("failed to read user row: %w", err)))
				return
			}
			if !yield(user, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.User{}, unavailable(fmt.Errorf("failed to scan users: %w", err)))
		}
	}
}

func (ds *DatabaseStore) DeleteUser(ctx context.Context, username string) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return unavailable(fmt.Errorf("failed to delete user: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) UpdateUserField(ctx context.Context, username string, field model.UserField, value any) error {
	column, ok := userColumns[field]
	if !ok {
		return fmt.Errorf("%w: unknown user field %q", ErrInvalidField, field)
	}

	// type-check the value the same way the memory store does
	var probe model.User
	if err := field.Apply(&probe, value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	query := fmt.Sprintf(`UPDATE users SET %s = $1 WHERE username = $2`, column)
	tag, err := ds.pool.Exec(ctx, query, value, username)
	if err != nil {
		return unavailable(fmt.Errorf("failed to update user: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	if err := ds.pool.Ping(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}
