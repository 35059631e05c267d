package receipt_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/concept"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/payroll"
	"github.com/miguelF21/Facepay/internal/receipt"
	receipterrors "github.com/miguelF21/Facepay/internal/receipt/errors"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	employees employee.Service
	payrolls  payroll.Service
	concepts  concept.Service
	receipts  receipt.Service
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.NewSQLite(t,
		&user.User{}, &contact.Contact{}, &address.Address{}, &employee.Employee{},
		&payroll.Payroll{}, &concept.Concept{}, &receipt.PayReceipt{}, &kafka.OutboxEvent{},
	)
	log := zap.NewNop()
	return fixture{
		db:        db,
		employees: employee.NewService(db, employee.NewRepository(db), log),
		payrolls:  payroll.NewService(db, payroll.NewRepository(db), log),
		concepts:  concept.NewService(db, concept.NewRepository(db), log),
		receipts:  receipt.NewServiceWithOutbox(db, receipt.NewRepository(db), kafka.NewOutboxRepository(db), log),
	}
}

func (f fixture) payrollFor(t *testing.T, code string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	emp, err := f.employees.Create(ctx, employee.EmployeeRequest{EmployeeCode: types.Some(code)})
	require.NoError(t, err)
	empID := uuid.MustParse(emp.ID)

	p, err := f.payrolls.Create(ctx, payroll.PayrollRequest{
		EmployeeID: empID,
		NetSalary:  types.Some(decimal.RequireFromString("980.25")),
	})
	require.NoError(t, err)
	return empID, uuid.MustParse(p.ID)
}

func TestReceipt_NestsPayrollAndEmployee(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empID, payrollID := f.payrollFor(t, "EMP001")

	_, err := f.concepts.Create(ctx, concept.ConceptRequest{Code: "BASE", PayrollID: payrollID})
	require.NoError(t, err)

	r, err := f.receipts.Create(ctx, receipt.PayReceiptRequest{
		PayrollID:    payrollID,
		EmployeeID:   empID,
		PDFReference: types.Some("receipts/2024-01/EMP001.pdf"),
	})
	require.NoError(t, err)
	assert.False(t, r.GeneratedAt.IsZero())
	require.NotNil(t, r.Payroll)
	assert.Equal(t, "980.25", *r.Payroll.NetSalary)
	require.Len(t, r.Payroll.Concepts, 1)
	assert.Equal(t, "BASE", r.Payroll.Concepts[0].Code)
	require.NotNil(t, r.Payroll.Employee)
	require.NotNil(t, r.Employee)
	assert.Equal(t, "EMP001", *r.Employee.EmployeeCode)

	var evt kafka.OutboxEvent
	require.NoError(t, f.db.First(&evt).Error)
	assert.Equal(t, "pay_receipt_created", evt.EventType)
	assert.Equal(t, r.ID, evt.AggregateID)
}

func TestReceipt_PatchKeepsGeneratedAt(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empID, payrollID := f.payrollFor(t, "EMP002")

	r, err := f.receipts.Create(ctx, receipt.PayReceiptRequest{PayrollID: payrollID, EmployeeID: empID})
	require.NoError(t, err)

	updated, err := f.receipts.Patch(ctx, r.ID, receipt.PayReceiptPatchRequest{
		PDFReference: types.Some("receipts/late.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, "receipts/late.pdf", *updated.PDFReference)
	assert.True(t, r.GeneratedAt.Equal(updated.GeneratedAt))
	assert.Equal(t, payrollID.String(), updated.PayrollID)
}

func TestReceipt_CascadesFromPayroll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empID, payrollID := f.payrollFor(t, "EMP003")

	r, err := f.receipts.Create(ctx, receipt.PayReceiptRequest{PayrollID: payrollID, EmployeeID: empID})
	require.NoError(t, err)

	require.NoError(t, f.payrolls.Delete(ctx, payrollID.String()))

	_, err = f.receipts.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, receipterrors.ErrPayReceiptNotFound)
}

func TestReceipt_FilterByEmployee(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	empA, payrollA := f.payrollFor(t, "EMP004")
	empB, payrollB := f.payrollFor(t, "EMP005")

	for _, req := range []receipt.PayReceiptRequest{
		{PayrollID: payrollA, EmployeeID: empA},
		{PayrollID: payrollA, EmployeeID: empA},
		{PayrollID: payrollB, EmployeeID: empB},
	} {
		_, err := f.receipts.Create(ctx, req)
		require.NoError(t, err)
	}

	q, err := receipt.ListDefinition.Parse(url.Values{"employee_id": {empA.String()}})
	require.NoError(t, err)
	rows, total, err := f.receipts.GetAll(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, row := range rows {
		assert.Equal(t, empA.String(), row.EmployeeID)
	}

	_, err = receipt.ListDefinition.Parse(url.Values{"payroll_id": {"nope"}})
	assert.Error(t, err)
}
