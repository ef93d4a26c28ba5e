package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"crpms_ledger/internal/adapter/http/handlers/mocks"
	"crpms_ledger/internal/adapter/http/middleware"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase"
	"crpms_ledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Anonymous())
	r.POST("/payments", h.CreatePayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/record/:record_number", h.GetPaymentByRecord)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

		w := serve(r, http.MethodPost, "/payments", `{"record_number":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("operator is taken from the request context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), int64(1), 60000.0, nil, gomock.Any()).DoAndReturn(
			func(_ any, n int64, amount float64, _ *time.Time, op entities.Operator) (entities.Payment, error) {
				if op.ID != "local" {
					t.Fatalf("unexpected operator %+v", op)
				}
				return entities.Payment{PaymentNumber: 1, RecordNumber: n, AmountPaid: amount, ReceivedBy: op.ID}, nil
			})
		r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

		w := serve(r, http.MethodPost, "/payments", `{"record_number":1,"amount_paid":60000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Payment recorded" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	cases := []struct {
		err    error
		status int
	}{
		{err: usecase.ErrInvalidAmount, status: http.StatusBadRequest},
		{err: usecase.ErrServiceRecordNotFound, status: http.StatusNotFound},
		{err: usecase.ErrServiceRecordAlreadyPaid, status: http.StatusConflict},
		{err: fmt.Errorf("settle record 1: %w", interfaces.ErrSequenceContention), status: http.StatusInternalServerError},
		{err: errors.New("dynamodb down"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Payment{}, tc.err)
			r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

			w := serve(r, http.MethodPost, "/payments", `{"record_number":1,"amount_paid":60000,"payment_date":"2025-03-10"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestPaymentHandler_GetPaymentByRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().GetBillByRecord(gomock.Any(), int64(3)).Return(entities.Bill{RecordNumber: 3, AmountPaid: 60000, PlateNumber: "RAD123A"}, nil)
		r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

		w := serve(r, http.MethodGet, "/payments/record/3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decodeBody(t, w)["data"].(map[string]any)
		if data["plate_number"] != "RAD123A" {
			t.Fatalf("unexpected bill %v", data)
		}
	})

	t.Run("unpaid record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().GetBillByRecord(gomock.Any(), int64(3)).Return(entities.Bill{}, usecase.ErrPaymentNotFound)
		r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

		w := serve(r, http.MethodGet, "/payments/record/3", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "PAYMENT_NOT_FOUND" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("negative record number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc, time.UTC))

		w := serve(r, http.MethodGet, "/payments/record/-1", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
