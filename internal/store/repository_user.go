// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	hash   func(string) (string, error)
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger. Passwords are hashed with bcrypt.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		hash:   utils.HashPassword,
	}
}

// CreateUser hashes the plaintext password, assigns a fresh id and inserts
// the user. The returned user carries the hash and the database timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPhoneAlreadyExists].
//   - CHECK / NOT NULL violations → [*ConstraintError].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := r.hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}
	user.Password = hash
	user.ID = utils.NewObjectID()
	if user.Level == "" {
		user.Level = models.LevelFresh
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("class", r.db.classify(err)).Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrPhoneAlreadyExists
		}
		if cErr := constraintError(err); cErr != err {
			return models.User{}, cErr
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByPhone returns the user registered with phone, including the
// password hash.
func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.findUser(ctx, "phone", phone)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user  models.User
		level string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Phone,
		&user.Password,
		&user.DisplayName,
		&user.ExperienceYears,
		&user.Address,
		&level,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.Level = models.Level(level)

	return user, nil
}

// DeleteUserByID physically removes the user and, through the foreign key,
// their tasks.
func (r *userRepository) DeleteUserByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserByID").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
