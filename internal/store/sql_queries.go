// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-punch-tracker/models"
)

const (
	sessionTokensTable = "session_tokens"

	// the table holds at most one row: the current session
	sessionTokenRowID = 1

	upsertSessionTokenSuffix = `ON CONFLICT(id) DO UPDATE SET
		access_token  = excluded.access_token,
		refresh_token = excluded.refresh_token,
		expires_at    = excluded.expires_at,
		updated_at    = excluded.updated_at`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildLoadTokenQuery() (string, []any, error) {
	return sqlite.
		Select("access_token", "refresh_token", "expires_at").
		From(sessionTokensTable).
		Where(sq.Eq{"id": sessionTokenRowID}).
		ToSql()
}

func buildSaveTokenQuery(token models.Token, now time.Time) (string, []any, error) {
	expiresAt := sql.NullTime{Time: token.ExpiresAt, Valid: !token.ExpiresAt.IsZero()}

	return sqlite.
		Insert(sessionTokensTable).
		Columns("id", "access_token", "refresh_token", "expires_at", "updated_at").
		Values(sessionTokenRowID, token.AccessToken, token.RefreshToken, expiresAt, now).
		Suffix(upsertSessionTokenSuffix).
		ToSql()
}

func buildClearTokenQuery() (string, []any, error) {
	return sqlite.
		Delete(sessionTokensTable).
		Where(sq.Eq{"id": sessionTokenRowID}).
		ToSql()
}
