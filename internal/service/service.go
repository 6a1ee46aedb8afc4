package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/steelbridge/fabshop/internal/config"
	"github.com/steelbridge/fabshop/internal/repository"
	"go.uber.org/zap"
)

// Services is the business layer the handlers talk to.
type Services struct {
	Customer    *CustomerService
	Employee    *EmployeeService
	Job         *JobService
	Invoice     *InvoiceService
	Material    *MaterialService
	Vendor      *VendorService
	Procurement *ProcurementService
	Photo       *PhotoService
	Report      *ReportService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *Services {
	// Object store is optional: without it photo uploads still record
	// caller-supplied paths, they just skip the byte transfer.
	var minioClient *minio.Client
	if cfg.Storage.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Warn("object store unavailable, photo uploads will store paths only", zap.Error(err))
			minioClient = nil
		}
	}

	return &Services{
		Customer:    NewCustomerService(repos.Customer),
		Employee:    NewEmployeeService(repos.Employee, repos.WorkLog),
		Job:         NewJobService(repos.Job, repos.JobMaterial, repos.WorkLog, repos.Note, repos.Shipment),
		Invoice:     NewInvoiceService(repos.Invoice),
		Material:    NewMaterialService(repos.Material, repos.JobMaterial),
		Vendor:      NewVendorService(repos.Vendor),
		Procurement: NewProcurementService(repos.Purchase, repos.Vendor, repos.Material),
		Photo:       NewPhotoService(repos.Photo, repos.Job, minioClient, cfg.Storage.Bucket),
		Report:      NewReportService(repos.Report),
	}
}
