package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X space-horror/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// Номер сборки - число дней от начала разработки.
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

const productName = "space-horror"

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	Product    string `json:"product"`
	BuildID    int    `json:"build_id"`
	BuildDate  string `json:"build_date"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	CI         string `json:"ci"`
	Release    bool   `json:"release"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
func Info() VersionInfo {
	info := VersionInfo{
		Product:   productName,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
		Release:   releaseBuild,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string (для логов и меню).
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("%s dev build (%s)", productName, info.Error)
	}

	kind := "dev"
	if info.Release {
		kind = "release"
	}
	return fmt.Sprintf(
		"%s %s build %d (%s) commit[%s] branch[%s] ci[%s]",
		productName,
		kind,
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

// IsRelease сообщает, собран ли бинарник с тегом release.
func IsRelease() bool { return releaseBuild }

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
