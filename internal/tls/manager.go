package tls

import (
	"crypto/tls"
	"fmt"
	"log"

	"github.com/caddyserver/certmagic"
	"github.com/verdantgarden/verdant/internal/models"
	"gorm.io/gorm"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	db        *gorm.DB
	certmagic *certmagic.Config
}

// NewManager creates a new TLS manager
func NewManager(db *gorm.DB, cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	// Create certmagic config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return &certmagic.Default, nil
		},
	})

	magicCfg := certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	// Configure ACME issuer
	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	magicCfg.Issuers = []certmagic.Issuer{
		certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
			CA:     ca,
			Email:  cfg.Email,
			Agreed: true,
		}),
	}

	m := &Manager{
		cfg:       cfg,
		db:        db,
		certmagic: magicCfg,
	}

	// Load and manage allowed domains
	if err := m.RefreshDomains(); err != nil {
		return nil, fmt.Errorf("failed to load domains: %w", err)
	}

	return m, nil
}

// GetAllowedDomains queries the database for all domains that should
// have certificates: the base domain, every garden subdomain, and
// every custom domain
func (m *Manager) GetAllowedDomains() ([]string, error) {
	domains := []string{
		m.cfg.BaseDomain,
	}

	var gardenRows []models.Garden
	if err := m.db.Find(&gardenRows).Error; err != nil {
		return nil, fmt.Errorf("failed to query gardens: %w", err)
	}

	for _, garden := range gardenRows {
		domains = append(domains, fmt.Sprintf("%s.%s", garden.Subdomain, m.cfg.BaseDomain))

		if garden.CustomDomain != nil && *garden.CustomDomain != "" {
			domains = append(domains, *garden.CustomDomain)
		}
	}

	return domains, nil
}

// RefreshDomains reloads the allowed domains list from database
func (m *Manager) RefreshDomains() error {
	domains, err := m.GetAllowedDomains()
	if err != nil {
		return err
	}

	log.Printf("TLS: managing certificates for %d domains", len(domains))

	// Tell certmagic to manage these domains
	if err := m.certmagic.ManageAsync(m.db.Statement.Context, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}

	return nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}
