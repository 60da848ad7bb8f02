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

type groupRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
	now    func() time.Time
}

// NewGroupRepository constructs a [GroupRepository] backed by db.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (r *groupRepository) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateGroup(group); err != nil {
		return models.Group{}, err
	}

	if group.ID == "" {
		group.ID = r.ids.Generate()
	}
	group.CreatedAt = r.now()

	query, args, err := buildInsertGroupQuery(r.db.builder, group)
	if err != nil {
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if translated := r.db.errorClassificator.Translate(err); errors.Is(translated, ErrGroupAlreadyExists) {
			return models.Group{}, translated
		}
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Msg("error inserting group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return group, nil
}

func (r *groupRepository) FindGroupByID(ctx context.Context, id string) (models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGroupQuery(r.db.builder, id)
	if err != nil {
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var group models.Group
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.Name, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Group{}, ErrGroupNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.FindGroupByID").Str("group_id", id).Msg("error scanning group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return group, nil
}

func (r *groupRepository) FindExistingGroupIDs(ctx context.Context, ids []string) ([]string, error) {
	existing := make([]string, 0, len(ids))
	for start := 0; start < len(ids); start += groupIDsPerLookup {
		end := min(start+groupIDsPerLookup, len(ids))

		found, err := r.findExistingGroupIDs(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		existing = append(existing, found...)
	}

	return existing, nil
}

func (r *groupRepository) findExistingGroupIDs(ctx context.Context, ids []string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectExistingGroupIDsQuery(r.db.builder, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.FindExistingGroupIDs").Int("count", len(ids)).Msg("error querying groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	existing := make([]string, 0, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		existing = append(existing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return existing, nil
}
