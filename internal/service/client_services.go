package service

import (
	"github.com/MKhiriev/go-punch-tracker/internal/adapter"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
)

// ClientServices groups the command-line client's services.
type ClientServices struct {
	AuthService      ClientAuthService
	DashboardService DashboardService
	ExportService    ExportService
}

func NewClientServices(api adapter.TrainingAPI, restorer SessionRestorer, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(api, restorer, logger),
		DashboardService: NewDashboardService(api, logger),
		ExportService:    NewExportService(api, logger),
	}
}
