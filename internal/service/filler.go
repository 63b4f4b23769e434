package service

import (
	"context"
	"fmt"

	"subfeed/internal/domain"
)

// FillToSize pulls pages from pager until at least target cards were collected or a page comes
// back empty. The last page is kept whole, so the result may exceed target. Pages are appended
// as they are; the pager is expected not to overlap. On a pager error the cards gathered so far
// are returned together with the error.
func FillToSize(ctx context.Context, pager Pager, target int) ([]domain.Card, error) {
	var batch []domain.Card
	for {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return batch, fmt.Errorf("next page: %w", err)
		}
		if len(page) == 0 {
			return batch, nil
		}

		batch = append(batch, page...)
		if len(batch) >= target {
			return batch, nil
		}
	}
}
