// Package domain contains application services orchestrating domain logic by search.
package domain

import (
	"context"
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
	"github.com/Harshvardhan-91/Project-Management/internal/filter"

	"golang.org/x/sync/errgroup"
)

// Search filters every entity kind by query and narrows the result to the
// requested category. Counts are taken before the category is applied.
func (u *Usecase) Search(ctx context.Context, query, category string) (entities.SearchPage, error) {
	q := filter.NewQuery(query)
	c := filter.ParseCategory(category)
	page := entities.SearchPage{Query: q.String(), Category: string(c)}

	if !q.Empty() && q.Len() < u.minQueryLength {
		page.Results = filter.Empty()
		return page, nil
	}

	all, err := u.fetchAll(ctx)
	if err != nil {
		return page, err
	}

	matched := filter.Results(all, q, filter.All)
	page.Counts = filter.Counts(matched)
	page.Results = c.Apply(matched)

	u.log.Debugw("search", "query", q.String(), "category", c, "total", page.Counts.Total)
	return page, nil
}

func (u *Usecase) fetchAll(ctx context.Context) (entities.SearchResults, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var res entities.SearchResults
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Projects, err = u.repo.ListProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.Tasks, err = u.repo.ListTasks(gctx, entities.TaskFilter{})
		return err
	})
	g.Go(func() (err error) {
		res.Users, err = u.repo.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.Teams, err = u.repo.ListTeams(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Errorw("failed to fetch search candidates", "error", err)
		return entities.SearchResults{}, fmt.Errorf("fetch search candidates: %w", err)
	}
	return res, nil
}
