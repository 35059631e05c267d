package employee

import (
	employeeerrors "github.com/miguelF21/Facepay/internal/employee/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return employeeerrors.ErrEmployeeNotFound
	case dberr.KindDuplicate:
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	case dberr.KindForeignKey:
		return apperror.ErrInvalidReference
	}

	return err
}
