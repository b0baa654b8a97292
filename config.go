package main

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// ScenarioConfig controls the profit trajectory projection
type ScenarioConfig struct {
	GrowthRates     []float64 `yaml:"growth_rates" json:"growth_rates"`         // Annual growth rates in percent (e.g., 30 = 30%)
	HorizonYears    int       `yaml:"horizon_years" json:"horizon_years"`       // Last projected year index (5 = years 0..5)
	CapacitySchools float64   `yaml:"capacity_schools" json:"capacity_schools"` // Ceiling on schools that can be served
}

// AdvisoryConfig holds the thresholds behind the strategic insights
type AdvisoryConfig struct {
	HealthyLTVCAC float64 `yaml:"healthy_ltv_cac" json:"healthy_ltv_cac"` // LTV/CAC must be strictly above this to count as healthy
}

// SensitivityConfig controls the growth × price sensitivity grid and the
// break-even price goal seek
type SensitivityConfig struct {
	PriceMin   float64 `yaml:"price_min" json:"price_min"`     // Lowest price per school in the grid
	PriceMax   float64 `yaml:"price_max" json:"price_max"`     // Highest price per school in the grid
	PriceStep  float64 `yaml:"price_step" json:"price_step"`   // Increment between grid columns
	TargetYear int     `yaml:"target_year" json:"target_year"` // Year by which the goal-seek price must break even
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"` // Listen address (use :0 for auto port)
}

// ReportConfig holds report and export settings
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" json:"output_dir"` // Where exported files are written
}

// Config holds the complete configuration
type Config struct {
	Title          string            `yaml:"title" json:"title"`
	CurrencySymbol string            `yaml:"currency_symbol" json:"currency_symbol"`
	Assumptions    Assumptions       `yaml:"assumptions" json:"assumptions"`
	Scenarios      ScenarioConfig    `yaml:"scenarios" json:"scenarios"`
	Advisory       AdvisoryConfig    `yaml:"advisory" json:"advisory"`
	Sensitivity    SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
	Server         ServerConfig      `yaml:"server" json:"server"`
	Report         ReportConfig      `yaml:"report" json:"report"`
}

// LoadConfig loads configuration from a YAML file layered over the embedded defaults.
// Percentages may be written with a % suffix (e.g., "renewal_rate: 80%").
func LoadConfig(filename string) (*Config, error) {
	config, err := LoadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal([]byte(preprocessPercentages(string(data))), config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	config.fillDefaults()

	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# School ROI Forecast Configuration
# Generated by goSchoolROI - feel free to edit manually
#
# ═══════════════════════════════════════════════════════════════════════════════
# VALUE FORMATS
# ═══════════════════════════════════════════════════════════════════════════════
#   Money: whole currency units (e.g., 2000000 = ¥2,000,000)
#   Percentages: whole percent, with or without a % sign (80 or 80%)
#   growth_rates: list of annual growth scenarios in percent
#
# ═══════════════════════════════════════════════════════════════════════════════
# RUN COMMANDS
# ═══════════════════════════════════════════════════════════════════════════════
#   ./goSchoolROI                      Embedded window (webview)
#   ./goSchoolROI --web                Web server mode (opens external browser)
#   ./goSchoolROI --console            Console tiles, trajectories and insights
#   ./goSchoolROI --console --pdf      Also write a PDF report
#   ./goSchoolROI --help               Show all options

`)
	content := append(header, data...)
	return os.WriteFile(filename, content, 0644)
}

// LoadDefaultConfig loads the default configuration from embedded default-config.yaml
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}
	config.fillDefaults()

	return &config, nil
}

// fillDefaults repairs settings a partial config file may have zeroed out
func (c *Config) fillDefaults() {
	if c.Title == "" {
		c.Title = "Magic School - China Go-to-Market ROI Tracker"
	}
	if c.CurrencySymbol == "" {
		c.CurrencySymbol = "¥"
	}
	if len(c.Scenarios.GrowthRates) == 0 {
		c.Scenarios.GrowthRates = []float64{30, 50, 80, 100}
	}
	if c.Scenarios.HorizonYears <= 0 {
		c.Scenarios.HorizonYears = 5
	}
	if c.Scenarios.CapacitySchools <= 0 {
		c.Scenarios.CapacitySchools = 1000
	}
	if c.Advisory.HealthyLTVCAC <= 0 {
		c.Advisory.HealthyLTVCAC = 3
	}
	if c.Sensitivity.PriceMin <= 0 && c.Sensitivity.PriceMax <= 0 {
		c.Sensitivity.PriceMin, c.Sensitivity.PriceMax = 20000, 40000
	}
	if c.Sensitivity.PriceMax < c.Sensitivity.PriceMin {
		c.Sensitivity.PriceMin, c.Sensitivity.PriceMax = c.Sensitivity.PriceMax, c.Sensitivity.PriceMin
	}
	if c.Sensitivity.PriceStep <= 0 {
		c.Sensitivity.PriceStep = 5000
	}
	if c.Sensitivity.TargetYear <= 0 || c.Sensitivity.TargetYear > c.Scenarios.HorizonYears {
		c.Sensitivity.TargetYear = min(3, c.Scenarios.HorizonYears)
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:0"
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "exports"
	}
}

// percentPattern matches values like "80%" after a key, list dash, comma or bracket
var percentPattern = regexp.MustCompile(`((?::|-|,|\[)\s*)(\d+\.?\d*)%`)

// preprocessPercentages strips % suffixes so "80%" reads as the whole-percent value 80
func preprocessPercentages(content string) string {
	return percentPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := percentPattern.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num, 'f', -1, 64)
			}
		}
		return match
	})
}

// Environment variables read by ApplyEnv
const (
	envConfigFile = "ROI_CONFIG"
	envAddr       = "ROI_ADDR"
	envOutputDir  = "ROI_OUTPUT_DIR"
)

// LoadEnv loads a .env file if one exists. A missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ConfigFileFromEnv returns ROI_CONFIG when set, otherwise fallback
func ConfigFileFromEnv(fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envConfigFile)); v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides server and report settings from ROI_* environment variables
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(envAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(envOutputDir)); v != "" {
		c.Report.OutputDir = v
	}
}

// GetDefaultValue returns a default value from the default config for display purposes
func GetDefaultValue(key string, defaultConfig *Config) string {
	if defaultConfig == nil {
		return ""
	}

	a := defaultConfig.Assumptions
	switch key {
	case "localization_cost":
		return formatDefaultMoney(a.LocalizationCost)
	case "cloud_cost":
		return formatDefaultMoney(a.CloudCost)
	case "sales_team_cost":
		return formatDefaultMoney(a.SalesTeamCost)
	case "price_per_school":
		return formatDefaultMoney(a.PricePerSchool)
	case "pilot_schools":
		return strconv.Itoa(a.PilotSchools)
	case "ltv_years":
		return strconv.FormatFloat(a.LTVYears, 'f', 1, 64)
	case "renewal_rate":
		return formatDefaultPercent(float64(a.RenewalRate))
	case "cac_per_school":
		return formatDefaultMoney(a.CACPerSchool)
	}

	return ""
}

func formatDefaultMoney(amount float64) string {
	if amount >= 1000000 {
		return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(amount/1000000, 'f', 1, 64), "0"), ".") + "m"
	} else if amount >= 1000 {
		return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(amount/1000, 'f', 1, 64), "0"), ".") + "k"
	}
	return strconv.FormatFloat(amount, 'f', 0, 64)
}

func formatDefaultPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
