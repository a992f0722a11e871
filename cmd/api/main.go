package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/andamio-hr/asistencia-backend-go/internal/config"
	appHTTP "github.com/andamio-hr/asistencia-backend-go/internal/handler/http"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/cron"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/email"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/jwt"
	"github.com/andamio-hr/asistencia-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/andamio-hr/asistencia-backend-go/internal/service/adjustment"
	authService "github.com/andamio-hr/asistencia-backend-go/internal/service/auth"
	fichajeService "github.com/andamio-hr/asistencia-backend-go/internal/service/fichaje"
	leaveService "github.com/andamio-hr/asistencia-backend-go/internal/service/leave"
	reportService "github.com/andamio-hr/asistencia-backend-go/internal/service/report"
	scheduleService "github.com/andamio-hr/asistencia-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	loc := cfg.Location()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	fichajeRepo := postgresql.NewFichajeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	fichajeSvc := fichajeService.NewFichajeService(db, fichajeRepo, scheduleRepo, shiftRepo, loc)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, shiftRepo, loc)
	adjustmentSvc := adjustmentService.NewAdjustmentService(db, adjustmentRepo, fichajeRepo, userRepo, emailService, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo, emailService, loc)
	reportSvc := reportService.NewReportService(fichajeRepo, leaveRepo, scheduleRepo, userRepo, loc)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(jwtRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Fichaje:    appHTTP.NewFichajeHandler(fichajeSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Adjustment: appHTTP.NewAdjustmentHandler(adjustmentSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
