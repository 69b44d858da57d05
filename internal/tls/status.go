package tls

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus returns the status of all managed certificates
func (m *Manager) GetCertificateStatus() ([]CertificateStatus, error) {
	domains, err := m.GetAllowedDomains()
	if err != nil {
		return nil, fmt.Errorf("failed to get domains: %w", err)
	}

	var statuses []CertificateStatus
	for _, domain := range domains {
		// Certmagic stores certs under
		// {certDir}/certificates/{ca}/{domain}/{domain}.crt
		certPath := ""
		for _, ca := range []string{
			"acme-v02.api.letsencrypt.org-directory",
			"acme-staging-v02.api.letsencrypt.org-directory",
		} {
			candidate := filepath.Join(m.cfg.CertDir, "certificates", ca, domain, domain+".crt")
			if _, err := os.Stat(candidate); err == nil {
				certPath = candidate
				break
			}
		}
		if certPath == "" {
			// Not yet provisioned
			continue
		}

		certPEM, err := os.ReadFile(certPath)
		if err != nil {
			continue
		}
		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		statuses = append(statuses, CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		})
	}

	return statuses, nil
}
