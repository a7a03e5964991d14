// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	tasksTable = models.Task{}.TableName()

	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	userColumns = []string{
		"id", "phone", "password_hash", "display_name", "experience_years",
		"address", "level", "created_at", "updated_at",
	}

	taskColumns = []string{
		"id", "user_id", "title", "description", "priority", "status",
		"due_date", "image", "deleted_at", "created_at", "updated_at",
	}

	defaultTaskSort = []string{"created_at DESC", "id DESC"}

	likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildFindUserQuery(column, value string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("id", "phone", "password_hash", "display_name", "experience_years", "address", "level").
		Values(user.ID, user.Phone, user.Password, user.DisplayName, user.ExperienceYears, user.Address, string(user.Level)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildDeleteUserQuery(id string) (string, []any, error) {
	return psql.Delete(usersTable).Where(sq.Eq{"id": id}).ToSql()
}

// ── tasks ─────────────────────────────────────────────────────────────────────

// escapeLike escapes the LIKE wildcards so that s is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// taskPredicate compiles filter into a WHERE expression.
func taskPredicate(filter TaskFilter) sq.And {
	where := sq.And{}

	if filter.ID != "" {
		where = append(where, sq.Eq{"id": filter.ID})
	}
	if filter.UserID != "" {
		where = append(where, sq.Eq{"user_id": filter.UserID})
	}
	if !filter.IncludeDeleted {
		where = append(where, sq.Eq{"deleted_at": nil})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		where = append(where, sq.Eq{"priority": string(*filter.Priority)})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return where
}

func buildFindTasksQuery(filter TaskFilter, opts FindOptions) (string, []any, error) {
	sort := opts.Sort
	if len(sort) == 0 {
		sort = defaultTaskSort
	}

	builder := psql.Select(taskColumns...).
		From(tasksTable).
		Where(taskPredicate(filter)).
		OrderBy(sort...)

	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}
	if opts.Skip > 0 {
		builder = builder.Offset(opts.Skip)
	}

	return builder.ToSql()
}

func buildCountTasksQuery(filter TaskFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(tasksTable).
		Where(taskPredicate(filter)).
		ToSql()
}

func buildFindOneTaskQuery(filter TaskFilter) (string, []any, error) {
	return psql.Select(taskColumns...).
		From(tasksTable).
		Where(taskPredicate(filter)).
		Limit(1).
		ToSql()
}

func buildInsertTaskQuery(task models.Task) (string, []any, error) {
	return psql.Insert(tasksTable).
		Columns("id", "user_id", "title", "description", "priority", "status", "due_date", "image", "deleted_at").
		Values(task.ID, task.UserID, task.Title, task.Desc, string(task.Priority), string(task.Status), task.DueDate, task.Image, task.DeletedAt).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildUpdateTaskQuery(task models.Task, now time.Time) (string, []any, error) {
	return psql.Update(tasksTable).
		SetMap(map[string]any{
			"title":       task.Title,
			"description": task.Desc,
			"priority":    string(task.Priority),
			"status":      string(task.Status),
			"due_date":    task.DueDate,
			"image":       task.Image,
			"deleted_at":  task.DeletedAt,
			"updated_at":  now,
		}).
		Where(sq.Eq{"id": task.ID, "user_id": task.UserID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}
