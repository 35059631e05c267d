package address

import (
	addresserrors "github.com/miguelF21/Facepay/internal/address/errors"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return addresserrors.ErrAddressNotFound
	}
	return err
}
