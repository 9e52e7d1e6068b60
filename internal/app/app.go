// Package app wires the repository, services, WebSocket hub and HTTP
// handlers into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/config"
	"github.com/thryft-app/thryft/internal/handlers"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/repository"
	"github.com/thryft-app/thryft/internal/services"
	"github.com/thryft-app/thryft/internal/websocket"
)

const shutdownTimeout = 5 * time.Second

// App holds all application dependencies
type App struct {
	log      logger.Logger
	cfg      *config.Config
	baseURL  string
	handlers *handlers.Handlers
	repo     *repository.Repository
	game     *services.GameService
	hub      *websocket.Hub
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg *config.Config) (*App, error) {
	return newApp(log, cfg, realNetworkProvider{})
}

func newApp(log logger.Logger, cfg *config.Config, network networkProvider) (*App, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	baseURL := resolveBaseURL(cfg, network)
	sessions := auth.New()

	// Initialize services
	accountService := services.NewAccountService(log, repo, sessions)
	closetService := services.NewClosetService(log, repo)
	outfitService := services.NewOutfitService(log, repo, baseURL)
	gameService := services.NewGameService(log, repo, outfitService, services.GameConfig{
		TotalRounds:   cfg.TotalRounds,
		RoundDuration: cfg.RoundSeconds,
	})

	// The hub greets new connections with the user's game state
	hub := websocket.New(log, gameService)
	closetService.SetBroadcaster(hub)
	gameService.SetBroadcaster(hub)

	h := handlers.New(
		accountService,
		closetService,
		outfitService,
		gameService,
		sessions,
		hub,
		repo,
		log,
	)

	return &App{
		log:      log,
		cfg:      cfg,
		baseURL:  baseURL,
		handlers: h,
		repo:     repo,
		game:     gameService,
		hub:      hub,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// BaseURL is the address players and share links use to reach the server
func (a *App) BaseURL() string {
	return a.baseURL
}

// Run serves HTTP and the WebSocket hub until ctx is cancelled or the
// server fails, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		a.log.Info("Server starting", "url", a.baseURL, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close stops every game timer and closes the database
func (a *App) Close() {
	a.game.Close()
	if err := a.repo.Close(); err != nil {
		a.log.Warn("Failed to close database", "error", err)
	}
}

// resolveBaseURL prefers the configured URL. Otherwise it uses the detected
// LAN address, since localhost in a share link is useless to other devices.
func resolveBaseURL(cfg *config.Config, network networkProvider) string {
	if cfg.BaseURL != "" && !strings.Contains(cfg.BaseURL, "localhost") {
		return strings.TrimSuffix(cfg.BaseURL, "/")
	}
	return fmt.Sprintf("http://%s:%d", getPreferredIP(network), cfg.Port)
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

// realInterface wraps a real net.Interface
type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider is an interface for getting network interfaces (for testing)
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

// realNetworkProvider implements networkProvider using actual net package
type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IP address for LAN access.
// Prefers private network addresses (192.168.x.x, 10.x.x.x, 172.16-31.x.x).
// Falls back to localhost if no suitable address is found.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var candidates []net.IP

	for _, iface := range ifaces {
		// Skip down, loopback, and point-to-point interfaces
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			// Only consider IPv4 addresses
			if ip == nil || ip.To4() == nil {
				continue
			}

			// Skip loopback
			if ip.IsLoopback() {
				continue
			}

			candidates = append(candidates, ip)
		}
	}

	// Prefer private network addresses
	for _, ip := range candidates {
		ipStr := ip.String()
		if strings.HasPrefix(ipStr, "192.168.") ||
			strings.HasPrefix(ipStr, "10.") ||
			isPrivate172(ip) {
			return ipStr
		}
	}

	// Fall back to any non-loopback if no private address found
	if len(candidates) > 0 {
		return candidates[0].String()
	}

	return "localhost"
}

// isPrivate172 checks if IP is in 172.16.0.0/12 range
func isPrivate172(ip net.IP) bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31
	}
	return false
}
