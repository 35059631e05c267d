package terminal

import (
	"github.com/miguelF21/Facepay/internal/shared/dberr"
	terminalerrors "github.com/miguelF21/Facepay/internal/terminal/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch dberr.Classify(err) {
	case dberr.KindNotFound:
		return terminalerrors.ErrTerminalNotFound
	}

	return err
}
