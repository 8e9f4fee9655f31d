package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const releasesURL = "https://api.github.com/repos/diillson/aws-storage-audit-go/releases/latest"

const devVersion = "0.0.0-dev"

// Sobrescritos por ldflags; vazios caem para build info.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

func init() {
	if Version != "" && Version != devVersion {
		return
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}
	applyBuildSettings(bi.Settings)
}

// applyBuildSettings usa vcs.revision, vcs.time, vcs.tag e vcs.modified
// gravados pelo toolchain para preencher Commit, BuildTime e Version.
func applyBuildSettings(settings []debug.BuildSetting) {
	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}
	if ts, err := time.Parse(time.RFC3339, vcs["vcs.time"]); BuildTime == "" && err == nil {
		BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
	}
	if tag := strings.TrimPrefix(vcs["vcs.tag"], "v"); tag != "" {
		Version = tag
		if strings.EqualFold(vcs["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

// CheckLatestVersion avisa no console quando há release mais nova publicada.
// Falhas de rede são ignoradas.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(releasesURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if IsNewer(latest, currentVersion) {
		pterm.Warning.Printfln("AWS Storage Audit %s is available (running %s)", latest, currentVersion)
		pterm.Info.Println("Update with: go install github.com/diillson/aws-storage-audit-go/cmd/storage-audit@latest")
	}
}

// IsNewer compara duas versões semânticas "x.y.z" campo a campo.
// Sufixos de pré-release são ignorados; campos não numéricos contam como zero.
func IsNewer(latest, current string) bool {
	l := strings.Split(strings.SplitN(latest, "-", 2)[0], ".")
	c := strings.Split(strings.SplitN(current, "-", 2)[0], ".")
	for i := 0; i < len(l) || i < len(c); i++ {
		lv, cv := versionField(l, i), versionField(c, i)
		if lv != cv {
			return lv > cv
		}
	}
	return false
}

func versionField(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0
	}
	return n
}

// FormatVersion retorna "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)",
// omitindo o que não estiver disponível.
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}
	switch {
	case Commit == "" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	case Commit == "":
		return fmt.Sprintf("%s (built at: %s)", ver, BuildTime)
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
}
