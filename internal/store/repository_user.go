package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// on the "users" and "user_groups" tables of either supported dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// CreateUser validates user, assigns ID and timestamps, and inserts the user
// row together with its group references in one transaction.
//
// Error handling:
//   - schema violations → *validators.FieldError wrapping the validators sentinels.
//   - duplicate username / email → [ErrUsernameAlreadyExists] / [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUser(user); err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.CreateUser").Msg("user rejected by schema")
		return models.User{}, err
	}

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}
	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Groups = nonNilGroups(user.Groups)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.insertUser(ctx, tx, user); err != nil {
			return err
		}
		return r.insertGroups(ctx, tx, user.ID, user.Groups)
	})
	if err != nil {
		return models.User{}, r.translate(ctx, "*userRepository.CreateUser", err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// UpdateUser replaces every mutable field of the user identified by
// user.ID, including its group references, and returns the stored record.
// Returns [ErrUserNotFound] if no such user exists.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		return models.User{}, ErrUserNotFound
	}

	if err := validators.ValidateUser(user); err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.UpdateUser").Msg("user rejected by schema")
		return models.User{}, err
	}

	user.UpdatedAt = r.now()
	user.Groups = nonNilGroups(user.Groups)

	var updated models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildUpdateUserQuery(r.db.builder, user)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		} else if n == 0 {
			return ErrUserNotFound
		}

		deleteQuery, deleteArgs, err := buildDeleteUserGroupsQuery(r.db.builder, user.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := r.insertGroups(ctx, tx, user.ID, user.Groups); err != nil {
			return err
		}

		updated, err = r.findUser(ctx, tx, "user_id", user.ID)
		return err
	})
	if err != nil {
		return models.User{}, r.translate(ctx, "*userRepository.UpdateUser", err)
	}

	return updated, nil
}

// FindUserByID returns the user with the given ID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, r.db, "user_id", id)
}

// FindUserByUsername returns the user with the given username or [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, r.db, "username", username)
}

// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, r.db, "email", email)
}

// DeleteUser removes the user and its group references.
// Returns [ErrUserNotFound] if nothing was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		groupsQuery, groupsArgs, err := buildDeleteUserGroupsQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, groupsQuery, groupsArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err := buildDeleteUserQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return r.translate(ctx, "*userRepository.DeleteUser", err)
	}

	return nil
}

// CountUsers returns the number of stored users.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *userRepository) insertUser(ctx context.Context, q queryer, user models.User) error {
	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) insertGroups(ctx context.Context, q queryer, userID string, groups []string) error {
	if len(groups) == 0 {
		return nil
	}

	for start := 0; start < len(groups); start += groupRowsPerInsert {
		end := min(start+groupRowsPerInsert, len(groups))

		query, args, err := buildInsertUserGroupsQuery(r.db.builder, userID, groups[start:end], start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, q queryer, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user    models.User
		code    sql.NullString
		expires sql.NullTime
	)
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.IsEmailConfirmed,
		&code,
		&expires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("column", column).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if code.Valid {
		user.ConfirmationCode = &code.String
	}
	if expires.Valid {
		t := expires.Time
		user.ConfirmationCodeExpires = &t
	}

	user.Groups, err = r.findGroups(ctx, q, user.ID)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) findGroups(ctx context.Context, q queryer, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserGroupsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findGroups").Str("user_id", userID).Msg("error querying user groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var groupID string
		if err := rows.Scan(&groupID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		groups = append(groups, groupID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}

// translate maps driver errors to store sentinels and logs anything that
// is not an expected domain outcome.
func (r *userRepository) translate(ctx context.Context, fn string, err error) error {
	log := logger.FromContext(ctx)

	translated := r.db.errorClassificator.Translate(err)
	switch {
	case errors.Is(translated, ErrUniquenessViolation), errors.Is(translated, ErrUserNotFound):
		log.Debug().Err(translated).Str("func", fn).Msg("write rejected")
	default:
		log.Err(err).Str("func", fn).Msg("unexpected DB error")
	}

	return translated
}

func nonNilGroups(groups []string) []string {
	if groups == nil {
		return []string{}
	}
	return groups
}
