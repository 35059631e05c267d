package contact

import (
	contacterrors "github.com/miguelF21/Facepay/internal/contact/errors"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return contacterrors.ErrContactNotFound
	}
	return err
}
