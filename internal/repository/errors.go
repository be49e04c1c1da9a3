package repository

import (
	"errors"

	apperrors "pickup-sports-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// constraintErrors maps unique indexes to the conflict reported to callers
var constraintErrors = map[string]error{
	"idx_rsvps_player_game":      apperrors.ErrRsvpExists,
	"idx_roles_player_team":      apperrors.ErrRoleExists,
	"idx_users_email_not_blank":  apperrors.ErrUserEmailExists,
	"idx_users_username":         apperrors.ErrUsernameExists,
	"idx_locations_name_address": apperrors.ErrLocationExists,
	"idx_game_teams_game_team":   apperrors.ErrGameTeamExists,
	"game_teams_pkey":            apperrors.ErrGameTeamExists,
	"team_managers_pkey":         apperrors.ErrTeamManagerExists,
}

// translateError turns a unique violation into an AlreadyExistsError and
// passes every other error through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if known, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return known
	}
	return apperrors.NewAlreadyExistsError("relation", "("+pgErr.ConstraintName+")")
}
