package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/verdantgarden/verdant/internal/auth"
	"github.com/verdantgarden/verdant/internal/config"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/handlers"
	"github.com/verdantgarden/verdant/internal/middleware"
	"github.com/verdantgarden/verdant/internal/snapshots"
	"github.com/verdantgarden/verdant/internal/tls"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Verdant HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Start the snapshot scheduler
		if config.GetBool("snapshots.enabled") {
			manager := snapshots.NewManager(
				config.GetString("snapshots.path"),
				config.GetInt("snapshots.retention"),
			)
			scheduler := snapshots.NewScheduler(manager, db.GetDB(), config.GetDuration("snapshots.interval"))
			scheduler.Start()
			log.Println("Snapshot scheduler started")
		}

		// Create Gin router
		r := gin.Default()
		r.Use(middleware.SecurityHeadersMiddleware())

		// System routes (no garden context needed)
		r.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"service": "verdant",
			})
		})

		// Get base domain from config (default to localhost for development)
		baseDomain := config.GetString("server.base_domain")
		if baseDomain == "" {
			baseDomain = "localhost"
		}

		// Create rate limiter for the login route
		loginRateLimiter := middleware.NewRateLimiter(5, time.Minute)

		// Garden-scoped routes
		gardenGroup := r.Group("/")
		gardenGroup.Use(middleware.GardenResolutionMiddleware(db.GetDB(), baseDomain))
		{
			// Public content routes
			gardenGroup.GET("/", handlers.ServeGardenPage)
			gardenGroup.GET("/theme.css", handlers.ThemeCSSHandler)
			gardenGroup.GET("/bloom.svg", handlers.BloomSVGHandler)
			gardenGroup.GET("/favicon.ico", handlers.BloomSVGHandler)

			// Admin routes
			adminGroup := gardenGroup.Group("/admin")
			{
				// Login form and submission (no auth required)
				adminGroup.GET("/login", handlers.LoginFormHandler)
				adminGroup.POST("/login", middleware.RateLimitMiddleware(loginRateLimiter, "/admin/login"), handlers.LoginHandler)

				// Admin root - redirect to login
				adminGroup.GET("/", func(c *gin.Context) {
					c.Redirect(302, "/admin/login")
				})

				// Logout route (auth required)
				adminGroup.POST("/logout", auth.RequireAuth(), handlers.LogoutHandler)

				// Protected admin routes (auth required)
				adminGroup.Use(auth.RequireAuth())
				{
					adminGroup.GET("/dashboard", handlers.DashboardHandler)
					adminGroup.GET("/api/theme", handlers.GetThemeHandler)
					adminGroup.PUT("/api/theme", handlers.SaveThemeHandler)
					adminGroup.POST("/api/theme/palette", handlers.GeneratePaletteHandler)
					adminGroup.POST("/api/theme/randomize", handlers.RandomizeThemeHandler)
				}
			}
		}

		// Check if TLS is enabled
		if config.GetBool("server.tls_enabled") {
			// Load TLS config
			tlsCfg, err := tls.LoadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load TLS config: %v\n", err)
				os.Exit(1)
			}

			// Initialize TLS manager
			tlsManager, err := tls.NewManager(db.GetDB(), tlsCfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize TLS manager: %v\n", err)
				os.Exit(1)
			}

			// Add HTTPS redirect middleware
			r.Use(middleware.HTTPSRedirectMiddleware())

			// Start HTTP server (port 80) for ACME challenges + redirects
			httpPort := config.GetString("server.http_port")
			httpAddr := fmt.Sprintf(":%s", httpPort)

			// Channel to signal HTTP server startup status
			httpStarted := make(chan error, 1)

			go func() {
				// Create listener first to catch binding errors immediately
				listener, err := net.Listen("tcp", httpAddr)
				if err != nil {
					httpStarted <- fmt.Errorf("failed to bind HTTP server to %s: %w", httpAddr, err)
					return
				}

				httpStarted <- nil
				fmt.Printf("HTTP server listening on %s (ACME challenges + redirects)\n", httpAddr)

				if err := http.Serve(listener, r); err != nil {
					fmt.Fprintf(os.Stderr, "HTTP server failed: %v\n", err)
					os.Exit(1)
				}
			}()

			// Wait for HTTP server to start (or fail)
			if err := <-httpStarted; err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "Hint: Port 80 typically requires root/sudo privileges\n")
				os.Exit(1)
			}

			// Start HTTPS server (port 443) for main traffic
			httpsPort := config.GetString("server.https_port")
			httpsAddr := fmt.Sprintf(":%s", httpsPort)
			fmt.Printf("Starting HTTPS server on %s\n", httpsAddr)
			fmt.Printf("Base domain: %s\n", baseDomain)

			server := &http.Server{
				Addr:      httpsAddr,
				Handler:   r,
				TLSConfig: tlsManager.GetTLSConfig(),
			}

			if err := server.ListenAndServeTLS("", ""); err != nil {
				fmt.Fprintf(os.Stderr, "HTTPS server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			// Dev mode - HTTP only
			httpPort := config.GetString("server.http_port")
			httpAddr := fmt.Sprintf(":%s", httpPort)
			fmt.Printf("Starting HTTP server on %s (TLS disabled)\n", httpAddr)
			fmt.Printf("Base domain: %s\n", baseDomain)
			if err := r.Run(httpAddr); err != nil {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
