package version

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const devVersion = "0.0.0-dev"

// DefaultReleaseURL aponta para o endpoint de releases do GitHub do projeto.
const DefaultReleaseURL = "https://api.github.com/repos/diillson/aws-reservation-summary/releases/latest"

// ReleaseURLEnv sobrescreve DefaultReleaseURL; "off" desliga a verificação.
const ReleaseURLEnv = "AWS_RESERVATION_SUMMARY_RELEASE_URL"

// Preenchidos via -ldflags no build de release.
var Version = devVersion
var Commit = ""
var BuildTime = ""

func init() {
	applyBuildInfo()
}

// applyBuildInfo completa os valores ausentes com os dados de VCS gravados pelo toolchain.
// Uma versão vinda de ldflags nunca é substituída.
func applyBuildInfo() {
	if Version != "" && Version != devVersion {
		return
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}
	if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); BuildTime == "" && err == nil {
		BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
	}
	if tag := strings.TrimPrefix(settings["vcs.tag"], "v"); tag != "" {
		Version = tag
		if strings.EqualFold(settings["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

// FormatVersion retorna a versão com commit e horário de build, por exemplo
// "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)".
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
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
}

// ReleaseURLFromEnv devolve a URL de releases configurada, ou "" quando a verificação
// foi desligada.
func ReleaseURLFromEnv() string {
	url, ok := os.LookupEnv(ReleaseURLEnv)
	if !ok {
		return DefaultReleaseURL
	}
	url = strings.TrimSpace(url)
	if strings.EqualFold(url, "off") {
		return ""
	}
	return url
}

// UpdateChecker consulta um endpoint no formato da API de releases do GitHub.
type UpdateChecker struct {
	ReleaseURL string
	Client     *http.Client
}

// NewUpdateChecker cria um UpdateChecker com timeout curto.
func NewUpdateChecker(releaseURL string) *UpdateChecker {
	return &UpdateChecker{
		ReleaseURL: releaseURL,
		Client:     &http.Client{Timeout: 3 * time.Second},
	}
}

// LatestVersion retorna a tag da última release, sem o prefixo "v".
func (c *UpdateChecker) LatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ReleaseURL, nil)
	if err != nil {
		return "", fmt.Errorf("error building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading release response: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("error decoding release response: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release response has no tag_name")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// Check informa a última versão publicada e se ela é mais nova que current.
// Builds de desenvolvimento nunca são comparados.
func (c *UpdateChecker) Check(ctx context.Context, current string) (string, bool, error) {
	if current == "" || strings.HasSuffix(current, "-dev") || c.ReleaseURL == "" {
		return "", false, nil
	}
	latest, err := c.LatestVersion(ctx)
	if err != nil {
		return "", false, err
	}
	return latest, IsNewer(latest, current), nil
}

// IsNewer compara duas versões semver numericamente. Uma release final é mais nova
// que um pre-release ou build "-dirty" do mesmo número.
func IsNewer(latest, current string) bool {
	lNums, lPre, ok := parseSemver(latest)
	if !ok {
		return false
	}
	cNums, cPre, ok := parseSemver(current)
	if !ok {
		return false
	}

	for i := range lNums {
		if lNums[i] != cNums[i] {
			return lNums[i] > cNums[i]
		}
	}
	return !lPre && cPre
}

func parseSemver(v string) ([3]int, bool, bool) {
	var nums [3]int
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	core, _, pre := strings.Cut(v, "-")

	parts := strings.Split(core, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return nums, false, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nums, false, false
		}
		nums[i] = n
	}
	return nums, pre, true
}
