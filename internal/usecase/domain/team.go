// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/filter"
)

// Teams returns teams whose name, owner or manager matches query.
func (u *Usecase) Teams(ctx context.Context, query string) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Text(teams, filter.NewQuery(query)), nil
}

// CreateTeam creates a team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		u.log.Errorw("failed to create team: missing team_name")
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTeam(ctx, team)
}
