package handlers

import (
	"net/http"
	"testing"
	"time"

	"crpms_ledger/internal/adapter/http/handlers/mocks"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRecordRouter(h *ServiceRecordHandler) *gin.Engine {
	r := gin.New()
	r.POST("/service-records", h.CreateRecord)
	r.GET("/service-records", h.ListRecords)
	r.GET("/service-records/unpaid", h.ListUnpaidRecords)
	r.GET("/service-records/:record_number", h.GetRecord)
	r.PUT("/service-records/:record_number", h.UpdateRecord)
	r.DELETE("/service-records/:record_number", h.DeleteRecord)
	return r
}

func TestServiceRecordHandler_CreateRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)
	loc := time.FixedZone("CAT", 2*60*60)

	t.Run("invalid service date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		r := newRecordRouter(NewServiceRecordHandler(uc, loc))

		w := serve(r, http.MethodPost, "/service-records", `{"plate_number":"RAD123A","service_code":"SRV001","service_date":"10/03/2025"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("date only is read in report zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		want := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
		uc.EXPECT().Create(gomock.Any(), "RAD123A", "SRV001", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, date *time.Time) (entities.ServiceRecordView, error) {
				if date == nil || !date.Equal(want) {
					t.Fatalf("unexpected service date %v", date)
				}
				return entities.ServiceRecordView{ServiceRecord: entities.ServiceRecord{RecordNumber: 1}}, nil
			})
		r := newRecordRouter(NewServiceRecordHandler(uc, loc))

		w := serve(r, http.MethodPost, "/service-records", `{"plate_number":"RAD123A","service_code":"SRV001","service_date":"2025-03-10"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Record created" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "missing plate", err: usecase.ErrInvalidPlateNumber, status: http.StatusBadRequest},
		{name: "car not found", err: usecase.ErrCarNotFound, status: http.StatusNotFound},
		{name: "service not found", err: usecase.ErrServiceNotFound, status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIServiceRecordUseCase(ctrl)
			uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), nil).Return(entities.ServiceRecordView{}, tc.err)
			r := newRecordRouter(NewServiceRecordHandler(uc, loc))

			w := serve(r, http.MethodPost, "/service-records", `{"plate_number":"RAD123A","service_code":"SRV001"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestServiceRecordHandler_ByNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodGet, "/service-records/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpaid route is not a record number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		uc.EXPECT().ListUnpaid(gomock.Any()).Return([]entities.ServiceRecordView{}, nil)
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodGet, "/service-records/unpaid", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(entities.ServiceRecord{}, usecase.ErrServiceRecordNotFound)
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodPut, "/service-records/7", `{"plate_number":"RAD999B"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update ignores payment status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ any, _ int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error) {
				if patch.PlateNumber != nil || patch.ServiceCode != nil || patch.ServiceDate != nil {
					t.Fatalf("expected empty patch, got %+v", patch)
				}
				return entities.ServiceRecord{RecordNumber: 7, PaymentStatus: entities.PaymentStatusPending}, nil
			})
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodPut, "/service-records/7", `{"payment_status":"Paid"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete paid record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(7)).Return(usecase.ErrServiceRecordAlreadyPaid)
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodDelete, "/service-records/7", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIServiceRecordUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
		r := newRecordRouter(NewServiceRecordHandler(uc, time.UTC))

		w := serve(r, http.MethodDelete, "/service-records/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
