package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyDataset      = errors.New("dataset is empty")
	ErrRefreshInProgress = errors.New("a dataset refresh is already running")
)
