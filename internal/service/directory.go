package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

// Directory searches verified alumni.
type Directory struct {
	accountStore model.AccountStore
	logger       *logger.Logger
}

func NewDirectory(accountStore model.AccountStore, logger *logger.Logger) *Directory {
	return &Directory{accountStore: accountStore, logger: logger}
}

// Search matches a numeric term against name or year of attendance and any
// other term against name, job title or organization.
func (s *Directory) Search(ctx context.Context, term string) ([]model.AccountSummary, error) {
	q := model.DirectoryQuery{
		Term:  strings.TrimSpace(term),
		Limit: model.DirectoryLimit,
	}
	if year, err := strconv.Atoi(q.Term); err == nil {
		q.Year = &year
	}

	accounts, err := s.accountStore.Search(ctx, q)
	if err != nil {
		s.logger.Error("Directory service: search failed",
			"term", q.Term,
			"error", err.Error())
		return nil, model.NewUpstreamError("failed to search directory", err)
	}

	s.logger.Debug("Directory service: search completed",
		"term", q.Term,
		"results", len(accounts))
	return summaries(accounts), nil
}
