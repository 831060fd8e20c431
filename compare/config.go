package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"valuematch/geo"
)

// Default comparison settings.
const (
	DefaultMethod      = MethodUWRatio
	DefaultUnit        = "km"
	DefaultDatePattern = "%d-%b-%Y"
	DefaultEllipsoid   = "WGS-84"
)

// Config is the YAML form of a comparator.
//
//	tolerances:
//	  date: 1
//	  string: 10
//	method: uwratio
//	unit: km
//	date_pattern: "%d-%b-%Y"
//	ellipsoid: WGS-84
//
// An empty date_pattern parses date strings in any recognizable format.
type Config struct {
	Tolerances  ToleranceConfig `yaml:"tolerances"`
	Method      string          `yaml:"method"`
	Unit        string          `yaml:"unit"`
	DatePattern string          `yaml:"date_pattern"`
	Ellipsoid   string          `yaml:"ellipsoid"`
}

// ToleranceConfig lists the fallback tolerance of every slot.
type ToleranceConfig struct {
	Number      float64 `yaml:"number"`
	Date        float64 `yaml:"date"`
	Coordinates float64 `yaml:"coordinates"`
	String      float64 `yaml:"string"`
	StrNumber   float64 `yaml:"str_number"`
	StrCustom   float64 `yaml:"str_custom"`
}

func (tc ToleranceConfig) values() [NumSlots]float64 {
	return [NumSlots]float64{tc.Number, tc.Date, tc.Coordinates, tc.String, tc.StrNumber, tc.StrCustom}
}

// DefaultConfig returns the settings used by Default.
func DefaultConfig() Config {
	return Config{
		Method:      DefaultMethod,
		Unit:        DefaultUnit,
		DatePattern: DefaultDatePattern,
		Ellipsoid:   DefaultEllipsoid,
	}
}

// Validate checks every setting and returns the first problem found.
func (cfg Config) Validate() error {
	for i, v := range cfg.Tolerances.values() {
		var t Tolerances
		if err := t.Set(Slot(i), v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if _, err := scorer(cfg.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := geo.ParseUnit(cfg.Unit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := ellipsoid(cfg.Ellipsoid); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LoadConfig loads and parses a comparator configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML on top of DefaultConfig. Unknown keys are
// rejected and the result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
