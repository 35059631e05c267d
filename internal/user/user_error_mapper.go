package user

import (
	"github.com/miguelF21/Facepay/internal/shared/dberr"
	usererrors "github.com/miguelF21/Facepay/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return usererrors.ErrUserNotFound
	case dberr.KindDuplicate:
		return usererrors.ErrEmailAlreadyExists
	}

	return err
}
