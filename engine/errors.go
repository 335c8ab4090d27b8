package engine

import "errors"

var (
	ErrRackRows    = errors.New("rack must have 6 rows")
	ErrRackColumns = errors.New("rack rows must have 7 columns")
	ErrCellValue   = errors.New("cell value must be -1, 0 or 1")
	ErrSide        = errors.New("side must be 1 or -1")
	ErrDepth       = errors.New("search depth out of range")
)
