package biometric

import (
	biometricerrors "github.com/miguelF21/Facepay/internal/biometric/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return biometricerrors.ErrBiometricDataNotFound
	case dberr.KindForeignKey:
		return apperror.ErrInvalidReference
	}

	return err
}
