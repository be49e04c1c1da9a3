package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pickup-sports-backend/internal/database/models"
	apperrors "pickup-sports-backend/internal/errors"
	"pickup-sports-backend/internal/permission"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewValidator returns a validator that reports fields by their JSON name
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError converts validator output into the app's ValidationError
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// lookupError maps a missing row to notFound and wraps anything else
func lookupError(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

func requireActor(actor *permission.Actor) error {
	if actor == nil {
		return apperrors.ErrAuthenticationRequired
	}
	return nil
}

// gameContext builds the permission view of a game loaded with its teams and managers
func gameContext(game *models.Game) permission.GameContext {
	ctx := permission.GameContext{OrganizerID: game.OrganizerID}
	for position := range game.GameTeams {
		gt, ok := game.TeamAt(position)
		if !ok {
			break
		}
		tc := permission.TeamContext{ID: gt.TeamID}
		if gt.Team != nil {
			tc.ManagerIDs = gt.Team.ManagerIDs()
		}
		ctx.Teams = append(ctx.Teams, tc)
	}
	return ctx
}
