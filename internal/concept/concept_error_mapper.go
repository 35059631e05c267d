package concept

import (
	concepterrors "github.com/miguelF21/Facepay/internal/concept/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return concepterrors.ErrConceptNotFound
	case dberr.KindDuplicate:
		return concepterrors.ErrConceptCodeAlreadyExists
	case dberr.KindForeignKey:
		return apperror.ErrInvalidReference
	}

	return err
}
