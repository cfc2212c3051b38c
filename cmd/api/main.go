package main

import (
	"fmt"
	"net/http"

	"github.com/gatewise/access-backend-go/internal/config"
	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/domain/employee"
	appHTTP "github.com/gatewise/access-backend-go/internal/handler/http"
	"github.com/gatewise/access-backend-go/internal/pkg/database"
	"github.com/gatewise/access-backend-go/internal/pkg/jwt"
	"github.com/gatewise/access-backend-go/internal/repository/postgresql"
	accessLogService "github.com/gatewise/access-backend-go/internal/service/accesslog"
	accessPointService "github.com/gatewise/access-backend-go/internal/service/accesspoint"
	attendanceService "github.com/gatewise/access-backend-go/internal/service/attendance"
	authService "github.com/gatewise/access-backend-go/internal/service/auth"
	dashboardService "github.com/gatewise/access-backend-go/internal/service/dashboard"
	employeeService "github.com/gatewise/access-backend-go/internal/service/employee"
	siteService "github.com/gatewise/access-backend-go/internal/service/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	accessPointRepo := postgresql.NewAccessPointRepository(db)
	accessLogRepo := postgresql.NewAccessLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	thresholds := attendance.Thresholds{
		CheckInDeadline:  cfg.Attendance.CheckInDeadline,
		CheckOutDeadline: cfg.Attendance.CheckOutDeadline,
	}
	routing := employee.DepartmentRouting(cfg.Attendance.DepartmentAccessPoints)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, accessPointRepo, accessLogRepo, routing, thresholds)
	siteSvc := siteService.NewSiteService(siteRepo, accessPointRepo)
	accessPointSvc := accessPointService.NewAccessPointService(accessPointRepo, siteRepo)
	accessLogSvc := accessLogService.NewAccessLogService(db, accessLogRepo, employeeRepo, accessPointRepo, thresholds)
	attendanceSvc := attendanceService.NewAttendanceService(accessLogRepo, employeeRepo, thresholds, cfg.Attendance.HistoryDays)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, thresholds)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	accessPointHandler := appHTTP.NewAccessPointHandler(accessPointSvc)
	accessLogHandler := appHTTP.NewAccessLogHandler(accessLogSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		authHandler,
		employeeHandler,
		siteHandler,
		accessPointHandler,
		accessLogHandler,
		attendanceHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
