package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/massimocristi1970/hr-dashboard/internal/config"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	appHTTP "github.com/massimocristi1970/hr-dashboard/internal/handler/http"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/jwt"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/oauth"
	"github.com/massimocristi1970/hr-dashboard/internal/repository/postgresql"
	agentfileService "github.com/massimocristi1970/hr-dashboard/internal/service/agentfile"
	authService "github.com/massimocristi1970/hr-dashboard/internal/service/auth"
	employeeService "github.com/massimocristi1970/hr-dashboard/internal/service/employee"
	leaveService "github.com/massimocristi1970/hr-dashboard/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Bootstrap(context.Background()); err != nil {
		fmt.Println("Error preparing database schema:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	blockedDayRepo := postgresql.NewBlockedDayRepository(db)
	entitlementRepo := postgresql.NewLeaveEntitlementRepository(db)
	agentFileRepo := postgresql.NewAgentFileRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	admins := auth.NewAdminSet(cfg.App.AdminEmails)

	leaveSvc := leaveService.NewService(leaveRequestRepo, blockedDayRepo, entitlementRepo, employeeRepo)
	employeeSvc := employeeService.NewService(employeeRepo)
	fileSvc := agentfileService.NewService(agentFileRepo, employeeRepo)
	authSvc := authService.NewService(googleSvc, jwtSvc, employeeRepo, admins)

	authHandler := appHTTP.NewAuthHandler(authSvc, employeeSvc, cfg.App.FrontendURL)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	fileHandler := appHTTP.NewFileHandler(fileSvc)
	adminHandler := appHTTP.NewAdminHandler(employeeSvc, leaveSvc)

	router := appHTTP.NewRouter(cfg, jwtSvc, admins, authHandler, leaveHandler, fileHandler, adminHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
