package services

import (
	"errors"

	"gorm.io/gorm"
)

// Error taxonomy shared by every engine operation. Forbidden and NotFound are
// terminal for a request; Conflict marks a duplicate relationship or request
// and is safe to retry.
var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the actor lacks the capability for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict indicates a duplicate relationship or request.
	ErrConflict = errors.New("conflict")
)

// translate maps storage-layer errors onto the engine taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
