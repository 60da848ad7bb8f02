package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/models"
)

const (
	usersTable      = "users"
	userGroupsTable = "user_groups"
	groupsTable     = "groups"
)

// userColumns is the column order used by every users SELECT and INSERT.
var userColumns = []string{
	"user_id",
	"username",
	"password",
	"email",
	"is_email_confirmed",
	"confirmation_code",
	"confirmation_code_expires",
	"created_at",
	"updated_at",
}

// Bind variables are limited per statement (SQLite 32766, PostgreSQL 65535),
// so long group lists are written and looked up in batches.
const (
	groupRowsPerInsert = 500
	groupIDsPerLookup  = 1000
)

var groupColumns = []string{
	"group_id",
	"name",
	"created_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Username,
			user.Password,
			user.Email,
			user.IsEmailConfirmed,
			user.ConfirmationCode,
			user.ConfirmationCodeExpires,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

// buildUpdateUserQuery replaces every mutable column of one user.
// created_at is never touched.
func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("username", user.Username).
		Set("password", user.Password).
		Set("email", user.Email).
		Set("is_email_confirmed", user.IsEmailConfirmed).
		Set("confirmation_code", user.ConfirmationCode).
		Set("confirmation_code_expires", user.ConfirmationCodeExpires).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"user_id": user.ID}).
		ToSql()
}

// buildSelectUserQuery selects one user where column equals value.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		ToSql()
}

// buildInsertUserGroupsQuery stores group references with their position so
// that reads return them in insertion order. offset is the position of
// groups[0] within the full list.
func buildInsertUserGroupsQuery(b sq.StatementBuilderType, userID string, groups []string, offset int) (string, []any, error) {
	insert := b.Insert(userGroupsTable).Columns("user_id", "group_id", "position")
	for i, groupID := range groups {
		insert = insert.Values(userID, groupID, offset+i)
	}

	return insert.ToSql()
}

func buildDeleteUserGroupsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Delete(userGroupsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSelectUserGroupsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("group_id").
		From(userGroupsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position").
		ToSql()
}

func buildInsertGroupQuery(b sq.StatementBuilderType, group models.Group) (string, []any, error) {
	return b.Insert(groupsTable).
		Columns(groupColumns...).
		Values(group.ID, group.Name, group.CreatedAt).
		ToSql()
}

func buildSelectGroupQuery(b sq.StatementBuilderType, groupID string) (string, []any, error) {
	return b.Select(groupColumns...).
		From(groupsTable).
		Where(sq.Eq{"group_id": groupID}).
		Limit(1).
		ToSql()
}

// buildSelectExistingGroupIDsQuery generates group_id IN (...) for ids.
func buildSelectExistingGroupIDsQuery(b sq.StatementBuilderType, ids []string) (string, []any, error) {
	return b.Select("group_id").
		From(groupsTable).
		Where(sq.Eq{"group_id": ids}).
		ToSql()
}
