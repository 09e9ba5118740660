package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/staffdeck/workforce-console/internal/config"
	appHTTP "github.com/staffdeck/workforce-console/internal/handler/http"
	"github.com/staffdeck/workforce-console/internal/pkg/jwt"
	"github.com/staffdeck/workforce-console/internal/pkg/toast"
	"github.com/staffdeck/workforce-console/internal/remote/hrapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "workforce-console"),
	)

	hrClient := hrapi.New(cfg.RemoteAPI.BaseURL, cfg.RemoteAPI.APIKey, cfg.RemoteAPI.Timeout, logger)
	toastHub := toast.NewHub()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	dashboardHandler := appHTTP.NewDashboardHandler(hrClient, hrClient, hrClient, toastHub, logger)
	attendanceHandler := appHTTP.NewAttendanceHandler(hrClient, logger)
	notificationHandler := appHTTP.NewNotificationHandler(toastHub)

	router := appHTTP.NewRouter(
		JWTService,
		dashboardHandler,
		attendanceHandler,
		notificationHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
