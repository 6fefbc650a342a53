package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/algebra/internal/bigint"
)

// DefaultProfileFileName is the name of the profile stored in the home
// directory.
const DefaultProfileFileName = ".algebra_calibration.json"

// CurrentProfileVersion is bumped whenever the profile layout or the
// meaning of its thresholds changes. Profiles of another version are
// ignored.
const CurrentProfileVersion = 2

// CalibrationProfile records the measured dispatch thresholds together
// with the hardware they were measured on.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	// Hardware fingerprint.
	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`

	// KaratsubaThreshold and FFTThreshold are in words.
	KaratsubaThreshold int `json:"karatsuba_threshold"`
	FFTThreshold       int `json:"fft_threshold"`

	// CalibrationTime is the wall time the measurement took.
	CalibrationTime string `json:"calibration_time,omitempty"`
	// Quick is set for profiles produced by the startup search.
	Quick bool `json:"quick,omitempty"`
}

// NewProfile returns an empty profile stamped with the current hardware.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
	}
}

// IsValid reports whether the profile was produced by this profile version
// on matching hardware.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether the profile is older than maxAge. A nil profile
// is always stale.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Thresholds returns the stored thresholds.
func (p *CalibrationProfile) Thresholds() bigint.Thresholds {
	return bigint.Thresholds{Karatsuba: p.KaratsubaThreshold, FFT: p.FFTThreshold}
}

// String summarizes the profile on one line.
func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("calibration profile v%d (%s/%s, %d CPUs, %d-bit words, %s): Karatsuba=%d words, FFT=%d words, calibrated %s",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.WordSize, p.GoVersion,
		p.KaratsubaThreshold, p.FFTThreshold, p.CalibratedAt.Format(time.RFC3339))
}

// SaveProfile writes the profile as indented JSON. The file is written to
// a temporary sibling first and renamed into place.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calibration profile: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	return nil
}

// loadProfile reads a profile from path.
func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding calibration profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path. When the file is missing,
// unreadable or invalid for this machine, it returns a fresh profile and
// false.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// GetDefaultProfilePath returns ~/.algebra_calibration.json, or the file
// name alone when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadCachedThresholds returns the thresholds of a valid profile at path.
// An empty path selects the default location.
func LoadCachedThresholds(path string) (bigint.Thresholds, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, ok := LoadOrCreateProfile(path)
	if !ok || p.KaratsubaThreshold <= 0 {
		return bigint.Thresholds{}, false
	}
	return p.Thresholds(), true
}
