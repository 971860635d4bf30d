package main

import (
	"context"
	"errors"

	"github.com/Veraticus/plu/internal/common"
	"github.com/Veraticus/plu/internal/dataset"
)

// loadStore materializes the configured dataset.
func loadStore(ctx context.Context) (*dataset.Store, error) {
	store, err := dataset.Load(ctx, settings.DatasetPath)
	if err != nil {
		common.LogError(err, "Failed to load dataset", common.Fields{"path": settings.DatasetPath})
		switch {
		case errors.Is(err, common.ErrUnsupportedFormat):
			return nil, common.NewUserError("dataset must be a .csv, .yaml or .db file", err)
		case errors.Is(err, common.ErrInvalidDataset), errors.Is(err, common.ErrEmptyDataset):
			return nil, common.NewUserError("dataset could not be used", err)
		default:
			return nil, common.NewUserError("failed to load dataset", err)
		}
	}

	common.LogDebug("Dataset ready", common.Fields{"source": store.Source(), "records": store.Len()})
	return store, nil
}
