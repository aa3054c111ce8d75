package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	service_mocks "github.com/Stratton1/futurepreneurs-sub002/internal/mocks/service_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/service"
	"github.com/golang/mock/gomock"
)

func TestHandler_RunFundingSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSweeps := service_mocks.NewMockSweepService(ctrl)
	h := &Handler{sweeps: mockSweeps}

	t.Run("returns the report", func(t *testing.T) {
		mockSweeps.EXPECT().RunFundingSweep(gomock.Any()).Return(service.SweepReport{Funded: 2, Expired: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/internal/sweeps/funding", nil)
		w := httptest.NewRecorder()
		h.RunFundingSweep(w, req)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var report service.SweepReport
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			t.Fatalf("decode report: %v", err)
		}
		if report.Funded != 2 || report.Expired != 1 {
			t.Errorf("unexpected report: %+v", report)
		}
	})

	t.Run("sweep failure", func(t *testing.T) {
		mockSweeps.EXPECT().RunFundingSweep(gomock.Any()).Return(service.SweepReport{}, errors.New("db error"))

		req := httptest.NewRequest(http.MethodPost, "/api/internal/sweeps/funding", nil)
		w := httptest.NewRecorder()
		h.RunFundingSweep(w, req)

		if w.Result().StatusCode != http.StatusInternalServerError {
			t.Errorf("got status %d, want %d", w.Result().StatusCode, http.StatusInternalServerError)
		}
	})
}

func TestHandler_RunReceiptSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSweeps := service_mocks.NewMockSweepService(ctrl)
	h := &Handler{sweeps: mockSweeps}

	mockSweeps.EXPECT().RunReceiptSweep(gomock.Any()).Return(service.SweepReport{Reminded: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/internal/sweeps/receipts", nil)
	w := httptest.NewRecorder()
	h.RunReceiptSweep(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var report service.SweepReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Reminded != 3 {
		t.Errorf("got reminded %d, want 3", report.Reminded)
	}
}
