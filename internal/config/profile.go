package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportProfile is a per-deployment YAML file with document branding and
// composition overrides. Empty fields keep the environment values.
//
//	title: Laporan Pengaduan Pasien
//	organization: RSUD Kota Contoh
//	timezone: Asia/Makassar
//	detail_row_limit: 50
type ReportProfile struct {
	Title          string `yaml:"title"`
	Organization   string `yaml:"organization"`
	Timezone       string `yaml:"timezone"`
	DetailRowLimit int    `yaml:"detail_row_limit"`
}

// LoadReportProfile reads a profile from path
func LoadReportProfile(path string) (*ReportProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report profile: %w", err)
	}

	var profile ReportProfile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("parse report profile %s: %w", path, err)
	}
	return &profile, nil
}

// Apply copies the non-empty profile fields onto rc
func (p *ReportProfile) Apply(rc *ReportConfig) {
	if p.Title != "" {
		rc.Title = p.Title
	}
	if p.Organization != "" {
		rc.Organization = p.Organization
	}
	if p.Timezone != "" {
		rc.Timezone = p.Timezone
	}
	if p.DetailRowLimit != 0 {
		rc.DetailRowLimit = p.DetailRowLimit
	}
}
