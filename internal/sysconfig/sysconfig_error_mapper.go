package sysconfig

import (
	"github.com/miguelF21/Facepay/internal/shared/dberr"
	sysconfigerrors "github.com/miguelF21/Facepay/internal/sysconfig/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return sysconfigerrors.ErrSystemConfigNotFound
	}

	return err
}
