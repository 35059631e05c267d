package recognition_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/miguelF21/Facepay/internal/accessattempt"
	accessattempterrors "github.com/miguelF21/Facepay/internal/accessattempt/errors"
	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/recognition"
	recognitionerrors "github.com/miguelF21/Facepay/internal/recognition/errors"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/terminal"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type services struct {
	employees   employee.Service
	attempts    accessattempt.Service
	recognition recognition.Service
}

func setup(t *testing.T) services {
	t.Helper()
	db := dbtest.NewSQLite(t,
		&user.User{}, &contact.Contact{}, &address.Address{}, &employee.Employee{},
		&terminal.Terminal{}, &accessattempt.AccessAttempt{}, &recognition.RecognitionResult{},
	)
	log := zap.NewNop()
	return services{
		employees:   employee.NewService(db, employee.NewRepository(db), log),
		attempts:    accessattempt.NewService(db, accessattempt.NewRepository(db), log),
		recognition: recognition.NewService(db, recognition.NewRepository(db), log),
	}
}

func TestRecognition_AttemptFlow(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	emp, err := s.employees.Create(ctx, employee.EmployeeRequest{
		FirstName:    types.Some("Test"),
		EmployeeCode: types.Some("TEST001"),
	})
	require.NoError(t, err)
	empID := uuid.MustParse(emp.ID)

	attempt, err := s.attempts.Create(ctx, accessattempt.AccessAttemptRequest{
		Method:     types.Some("face"),
		Result:     types.Some("granted"),
		EmployeeID: types.Some(empID),
	})
	require.NoError(t, err)

	result, err := s.recognition.Create(ctx, recognition.RecognitionResultRequest{
		Match:      types.Some(true),
		Confidence: types.Some(0.95),
		EmployeeID: types.Some(empID),
		AttemptID:  uuid.MustParse(attempt.ID),
	})
	require.NoError(t, err)
	assert.True(t, *result.Match)
	assert.InDelta(t, 0.95, *result.Confidence, 1e-9)
	require.NotNil(t, result.Attempt)
	require.NotNil(t, result.Attempt.Employee)
	assert.Equal(t, "TEST001", *result.Attempt.Employee.EmployeeCode)

	got, err := s.attempts.GetByID(ctx, attempt.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Employee)
	assert.Equal(t, "TEST001", *got.Employee.EmployeeCode)

	require.NoError(t, s.employees.Delete(ctx, emp.ID))

	got, err = s.attempts.GetByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EmployeeID)
	assert.Nil(t, got.Employee)

	kept, err := s.recognition.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.EmployeeID)

	require.NoError(t, s.attempts.Delete(ctx, attempt.ID))
	_, err = s.recognition.GetByID(ctx, result.ID)
	assert.ErrorIs(t, err, recognitionerrors.ErrRecognitionResultNotFound)
	_, err = s.attempts.GetByID(ctx, attempt.ID)
	assert.ErrorIs(t, err, accessattempterrors.ErrAccessAttemptNotFound)
}

func TestRecognition_FilterByMatchAndOrderByConfidence(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	attempt, err := s.attempts.Create(ctx, accessattempt.AccessAttemptRequest{})
	require.NoError(t, err)
	attemptID := uuid.MustParse(attempt.ID)

	for _, c := range []struct {
		match      bool
		confidence float64
	}{{true, 0.7}, {false, 0.2}, {true, 0.99}} {
		_, err := s.recognition.Create(ctx, recognition.RecognitionResultRequest{
			Match:      types.Some(c.match),
			Confidence: types.Some(c.confidence),
			AttemptID:  attemptID,
		})
		require.NoError(t, err)
	}

	q, err := recognition.ListDefinition.Parse(url.Values{"match": {"true"}, "ordering": {"-confidence"}})
	require.NoError(t, err)

	res, total, err := s.recognition.GetAll(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, res, 2)
	assert.InDelta(t, 0.99, *res[0].Confidence, 1e-9)
	assert.InDelta(t, 0.7, *res[1].Confidence, 1e-9)
}

func TestRecognition_PatchRejectsMalformedID(t *testing.T) {
	s := setup(t)

	_, err := s.recognition.Patch(context.Background(), "x", recognition.RecognitionResultPatchRequest{})

	assert.ErrorIs(t, err, recognitionerrors.ErrInvalidRecognitionResultID)
}
