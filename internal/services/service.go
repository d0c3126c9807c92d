package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ctxutil"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// callerID is the identity gate: every operation resolves the caller
// from the request context before touching storage.
func callerID(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apierr.Unauthorized("no identity attached to request")
	}
	return rd.UserID, nil
}

// PageParams is the shared pagination input for the list operations.
type PageParams struct {
	Page     int
	PageSize int
}

func (p *PageParams) normalize() error {
	if p.Page == 0 {
		p.Page = defaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}
	if p.Page < 1 {
		return apierr.Validation("page must be >= 1")
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		return apierr.Validation("page_size must be between 1 and %d", maxPageSize)
	}
	return nil
}

func (p PageParams) offset() int {
	return (p.Page - 1) * p.PageSize
}
