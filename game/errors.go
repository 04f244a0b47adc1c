package game

import "errors"

var (
	ErrInvalidIndex     = errors.New("invalid cell index")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
	ErrInvalidMineCount = errors.New("invalid mine count")
	ErrMinesPlaced      = errors.New("mines already placed")
	ErrNotPlaying       = errors.New("game is not in progress")
)
