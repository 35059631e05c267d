package payroll_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/concept"
	concepterrors "github.com/miguelF21/Facepay/internal/concept/errors"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/payroll"
	payrollerrors "github.com/miguelF21/Facepay/internal/payroll/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type services struct {
	employees employee.Service
	payrolls  payroll.Service
	concepts  concept.Service
}

func setup(t *testing.T) services {
	t.Helper()
	// payroll before concept so the concept table gets its foreign key
	db := dbtest.NewSQLite(t,
		&user.User{}, &contact.Contact{}, &address.Address{}, &employee.Employee{},
		&payroll.Payroll{}, &concept.Concept{},
	)
	log := zap.NewNop()
	return services{
		employees: employee.NewService(db, employee.NewRepository(db), log),
		payrolls:  payroll.NewService(db, payroll.NewRepository(db), log),
		concepts:  concept.NewService(db, concept.NewRepository(db), log),
	}
}

func money(s string) types.Nullable[decimal.Decimal] {
	return types.Some(decimal.RequireFromString(s))
}

func date(s string) types.Nullable[types.Date] {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return types.Some(d)
}

func createEmployee(t *testing.T, s services, code string) uuid.UUID {
	t.Helper()
	emp, err := s.employees.Create(context.Background(), employee.EmployeeRequest{
		FirstName:    types.Some("Ana"),
		EmployeeCode: types.Some(code),
	})
	require.NoError(t, err)
	return uuid.MustParse(emp.ID)
}

func TestPayroll_WithConcepts(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empID := createEmployee(t, s, "EMP001")

	p, err := s.payrolls.Create(ctx, payroll.PayrollRequest{
		EmployeeID:  empID,
		PeriodStart: date("2024-01-01"),
		PeriodEnd:   date("2024-01-31"),
		GrossSalary: money("1500.5"),
		Deductions:  money("200"),
		NetSalary:   money("1300.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1500.50", *p.GrossSalary)
	assert.Equal(t, "200.00", *p.Deductions)
	assert.Equal(t, "2024-01-01", p.PeriodStart.String())
	require.NotNil(t, p.Employee)
	assert.Equal(t, "EMP001", *p.Employee.EmployeeCode)
	assert.Empty(t, p.Concepts)

	payrollID := uuid.MustParse(p.ID)
	for _, code := range []string{"OVERTIME", "BONUS"} {
		_, err := s.concepts.Create(ctx, concept.ConceptRequest{
			Code:      code,
			Amount:    money("50"),
			PayrollID: payrollID,
		})
		require.NoError(t, err)
	}

	_, err = s.concepts.Create(ctx, concept.ConceptRequest{Code: "BONUS", PayrollID: payrollID})
	assert.ErrorIs(t, err, concepterrors.ErrConceptCodeAlreadyExists)

	_, err = s.concepts.Create(ctx, concept.ConceptRequest{Code: "ORPHAN", PayrollID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInvalidReference)

	got, err := s.payrolls.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Concepts, 2)
	assert.Equal(t, "BONUS", got.Concepts[0].Code)
	assert.Equal(t, "50.00", *got.Concepts[0].Amount)

	require.NoError(t, s.payrolls.Delete(ctx, p.ID))
	_, err = s.concepts.GetByID(ctx, "BONUS")
	assert.ErrorIs(t, err, concepterrors.ErrConceptNotFound)
}

func TestPayroll_PatchKeepsAbsentFields(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empID := createEmployee(t, s, "EMP002")

	p, err := s.payrolls.Create(ctx, payroll.PayrollRequest{
		EmployeeID:  empID,
		GrossSalary: money("1000"),
		NetSalary:   money("900"),
	})
	require.NoError(t, err)

	updated, err := s.payrolls.Patch(ctx, p.ID, payroll.PayrollPatchRequest{
		NetSalary:  types.Null[decimal.Decimal](),
		Deductions: money("100"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.NetSalary)
	assert.Equal(t, "100.00", *updated.Deductions)
	assert.Equal(t, "1000.00", *updated.GrossSalary)
	assert.Equal(t, empID.String(), updated.EmployeeID)
}

func TestPayroll_DeletedWithEmployee(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empID := createEmployee(t, s, "EMP003")

	p, err := s.payrolls.Create(ctx, payroll.PayrollRequest{EmployeeID: empID})
	require.NoError(t, err)

	require.NoError(t, s.employees.Delete(ctx, empID.String()))

	_, err = s.payrolls.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayroll_UnknownEmployee(t *testing.T) {
	s := setup(t)

	_, err := s.payrolls.Create(context.Background(), payroll.PayrollRequest{EmployeeID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInvalidReference)
}

func TestPayroll_FilterByPeriod(t *testing.T) {
	s := setup(t)
	ctx := context.Background()
	empID := createEmployee(t, s, "EMP004")

	for _, start := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
		_, err := s.payrolls.Create(ctx, payroll.PayrollRequest{EmployeeID: empID, PeriodStart: date(start)})
		require.NoError(t, err)
	}

	q, err := payroll.ListDefinition.Parse(url.Values{"period_start": {"2024-02-01"}})
	require.NoError(t, err)
	rows, total, err := s.payrolls.GetAll(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "2024-02-01", rows[0].PeriodStart.String())

	q, err = payroll.ListDefinition.Parse(url.Values{"ordering": {"-period_start"}})
	require.NoError(t, err)
	rows, _, err = s.payrolls.GetAll(ctx, q)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-03-01", rows[0].PeriodStart.String())

	_, err = payroll.ListDefinition.Parse(url.Values{"period_end": {"31/01/2024"}})
	assert.Error(t, err)
}

func TestPayroll_InvalidID(t *testing.T) {
	s := setup(t)

	_, err := s.payrolls.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayrollID)
}
