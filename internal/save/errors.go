package save

import "errors"

var (
	ErrInvalidSaveCommand = errors.New("invalid save command")
	ErrInvalidSlotName    = errors.New("invalid save name")
	ErrCorruptSave        = errors.New("save file is corrupt")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrNoSlots            = errors.New("no save files found")
)
