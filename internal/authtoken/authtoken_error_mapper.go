package authtoken

import (
	authtokenerrors "github.com/miguelF21/Facepay/internal/authtoken/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return authtokenerrors.ErrAuthTokenNotFound
	case dberr.KindDuplicate:
		return authtokenerrors.ErrTokenAlreadyExists
	case dberr.KindForeignKey:
		return apperror.ErrInvalidReference
	}

	return err
}
