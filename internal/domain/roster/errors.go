package roster

import "errors"

var (
	ErrSlotNotFound = errors.New("roster slot not found")
	ErrSlotTaken    = errors.New("page already has a chatter for this shift")
	ErrPageNotFound = errors.New("page for roster slot not found")
)
