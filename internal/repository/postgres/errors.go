package postgres

import (
	"errors"
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// missingReferences maps foreign keys declared in db/migrations to the
// entity the violating row pointed at.
var missingReferences = map[string]error{
	"users_team_fk":            entities.ErrTeamNotFound,
	"teams_product_owner_fk":   entities.ErrUserNotFound,
	"teams_project_manager_fk": entities.ErrUserNotFound,
	"tasks_project_fk":         entities.ErrProjectNotFound,
	"tasks_author_fk":          entities.ErrUserNotFound,
	"tasks_assigned_fk":        entities.ErrUserNotFound,
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// missingReference translates a foreign key violation into the not-found
// error of the referenced entity.
func missingReference(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if target, ok := missingReferences[pgErr.ConstraintName]; ok {
		return target
	}
	return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, pgErr.ConstraintName)
}
