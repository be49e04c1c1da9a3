package service

import (
	"context"

	"pickup-sports-backend/internal/permission"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GameServiceInterface defines the interface for game service operations
type GameServiceInterface interface {
	Create(ctx context.Context, actor *permission.Actor, req *CreateGameRequest) ([]GameResponse, error)
	Get(ctx context.Context, actor *permission.Actor, id uint) (*GameDetailsResponse, error)
	Update(ctx context.Context, actor *permission.Actor, id uint, req *UpdateGameRequest) (*GameResponse, error)
	Delete(ctx context.Context, actor *permission.Actor, id uint) error
	List(ctx context.Context, actor *permission.Actor, action GameListAction, opts GameListOptions) ([]GameResponse, error)
}

// RsvpServiceInterface defines the interface for rsvp service operations
type RsvpServiceInterface interface {
	List(ctx context.Context, gameID uint) ([]RsvpResponse, error)
	Create(ctx context.Context, actor *permission.Actor, gameID uint, req *CreateRsvpRequest) (*RsvpResponse, error)
	Update(ctx context.Context, actor *permission.Actor, gameID, rsvpID uint, req *UpdateRsvpRequest) (*RsvpResponse, error)
	Delete(ctx context.Context, actor *permission.Actor, gameID, rsvpID uint) error
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(ctx context.Context, actor *permission.Actor, req *CreateTeamRequest) (*TeamDetailsResponse, error)
	Get(ctx context.Context, id uint) (*TeamDetailsResponse, error)
	Update(ctx context.Context, actor *permission.Actor, id uint, req *UpdateTeamRequest) (*TeamDetailsResponse, error)
	Delete(ctx context.Context, actor *permission.Actor, id uint) error
	List(ctx context.Context, actor *permission.Actor, action TeamListAction) ([]TeamResponse, error)
}

// RoleServiceInterface defines the interface for team role service operations
type RoleServiceInterface interface {
	List(ctx context.Context, teamID uint) ([]RoleResponse, error)
	Create(ctx context.Context, actor *permission.Actor, teamID uint, req *CreateRoleRequest) (*RoleResponse, error)
	Update(ctx context.Context, actor *permission.Actor, teamID, roleID uint, req *UpdateRoleRequest) (*RoleResponse, error)
	Delete(ctx context.Context, actor *permission.Actor, teamID, roleID uint) error
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterUserRequest) (*CurrentUserResponse, error)
	Get(ctx context.Context, id uint) (*UserResponse, error)
	GetCurrent(ctx context.Context, actor *permission.Actor) (*CurrentUserResponse, error)
	UpdateCurrent(ctx context.Context, actor *permission.Actor, req *UpdateUserRequest) (*CurrentUserResponse, error)
}

// LocationServiceInterface defines the interface for location service operations
type LocationServiceInterface interface {
	Create(ctx context.Context, actor *permission.Actor, req *CreateLocationRequest) (*LocationResponse, error)
	Get(ctx context.Context, id uint) (*LocationResponse, error)
	Search(ctx context.Context, query string) ([]LocationResponse, error)
}
