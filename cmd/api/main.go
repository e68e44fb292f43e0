package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hamyaran/admin-api/config"
	authHandler "github.com/hamyaran/admin-api/internal/handler/auth"
	benefactorHandler "github.com/hamyaran/admin-api/internal/handler/benefactor"
	centerHandler "github.com/hamyaran/admin-api/internal/handler/center"
	companyHandler "github.com/hamyaran/admin-api/internal/handler/company"
	consultationHandler "github.com/hamyaran/admin-api/internal/handler/consultation"
	doctorHandler "github.com/hamyaran/admin-api/internal/handler/doctor"
	healthHandler "github.com/hamyaran/admin-api/internal/handler/health"
	healthAssistHandler "github.com/hamyaran/admin-api/internal/handler/healthassist"
	organizationHandler "github.com/hamyaran/admin-api/internal/handler/organization"
	patientHandler "github.com/hamyaran/admin-api/internal/handler/patient"
	serviceRequestHandler "github.com/hamyaran/admin-api/internal/handler/servicerequest"
	"github.com/hamyaran/admin-api/internal/middleware"
	"github.com/hamyaran/admin-api/internal/repository/postgres"
	"github.com/hamyaran/admin-api/internal/router"
	authService "github.com/hamyaran/admin-api/internal/service/auth"
	benefactorService "github.com/hamyaran/admin-api/internal/service/benefactor"
	centerService "github.com/hamyaran/admin-api/internal/service/center"
	companyService "github.com/hamyaran/admin-api/internal/service/company"
	consultationService "github.com/hamyaran/admin-api/internal/service/consultation"
	doctorService "github.com/hamyaran/admin-api/internal/service/doctor"
	"github.com/hamyaran/admin-api/internal/service/event"
	healthAssistService "github.com/hamyaran/admin-api/internal/service/healthassist"
	organizationService "github.com/hamyaran/admin-api/internal/service/organization"
	patientService "github.com/hamyaran/admin-api/internal/service/patient"
	serviceRequestService "github.com/hamyaran/admin-api/internal/service/servicerequest"
	"github.com/hamyaran/admin-api/internal/storage"
	"github.com/hamyaran/admin-api/pkg/auth"
	"github.com/hamyaran/admin-api/pkg/logger"
	"github.com/hamyaran/admin-api/pkg/mailer"
	"github.com/hamyaran/admin-api/pkg/metrics"
	"github.com/hamyaran/admin-api/pkg/validation"
)

func main() {
	log := logger.New(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	m := metrics.New("admin_api")

	files, err := storage.NewDiskStore(cfg.Storage.MediaDir, cfg.Storage.BaseURL, m)
	if err != nil {
		log.Fatal(err, "failed to initialize media storage")
	}

	validate := validation.New()

	ownerRepo := postgres.NewOwnerRepository(db)
	patientRepo := postgres.NewPatientRepository(db, m)
	benefactorRepo := postgres.NewBenefactorRepository(db, m)
	doctorRepo := postgres.NewDoctorRepository(db, m)
	healthAssistRepo := postgres.NewHealthAssistRepository(db, m)
	companyRepo := postgres.NewPrivateCompanyRepository(db, m)
	serviceCenterRepo := postgres.NewServiceCenterRepository(db, m)
	medicalCenterRepo := postgres.NewMedicalCenterRepository(db, m)
	charityCenterRepo := postgres.NewCharityCenterRepository(db, m)
	govOrgRepo := postgres.NewGovernmentOrganizationRepository(db, m)
	associationRepo := postgres.NewAssociationRepository(db, m)
	serviceRequestRepo := postgres.NewPatientServiceRequestRepository(db, m)
	consultationRepo := postgres.NewConsultationRequestRepository(db, m)
	outboxRepo := postgres.NewOutboxRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	emitter := event.NewEmitter(outboxRepo, log)
	mail := mailer.New(cfg.SMTP)

	patientSvc := patientService.NewService(patientRepo, ownerRepo, validate, emitter)
	benefactorSvc := benefactorService.NewService(benefactorRepo, ownerRepo, validate, emitter)
	doctorSvc := doctorService.NewService(doctorRepo, ownerRepo, validate, emitter)
	healthAssistSvc := healthAssistService.NewService(healthAssistRepo, ownerRepo, files, validate, emitter)
	companySvc := companyService.NewService(companyRepo, files, validate, emitter)
	serviceCenterSvc := centerService.NewServiceCenterService(serviceCenterRepo, files, validate, emitter)
	medicalCenterSvc := centerService.NewMedicalCenterService(medicalCenterRepo, files, validate, emitter)
	charityCenterSvc := centerService.NewCharityCenterService(charityCenterRepo, files, validate, emitter)
	govOrgSvc := organizationService.NewGovernmentOrganizationService(govOrgRepo, files, validate, emitter)
	associationSvc := organizationService.NewAssociationService(associationRepo, files, validate, emitter)
	serviceRequestSvc := serviceRequestService.NewService(serviceRequestRepo, patientRepo, ownerRepo, validate, emitter)
	consultationSvc := consultationService.NewService(consultationRepo, patientRepo, ownerRepo, validate, emitter, mail, log)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	authSvc := authService.NewService(accountRepo, jwtSvc)
	authMW := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(cfg, log, authMW,
		healthHandler.NewHandler(db),
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc),
		benefactorHandler.NewHandler(benefactorSvc),
		doctorHandler.NewHandler(doctorSvc),
		healthAssistHandler.NewHandler(healthAssistSvc),
		companyHandler.NewHandler(companySvc),
		centerHandler.NewHandler(serviceCenterSvc, medicalCenterSvc, charityCenterSvc),
		organizationHandler.NewHandler(govOrgSvc, associationSvc),
		serviceRequestHandler.NewHandler(serviceRequestSvc),
		consultationHandler.NewHandler(consultationSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
}
