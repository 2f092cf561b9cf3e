package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FetchTimeout bounds a single registry probe end to end.
const FetchTimeout = 5 * time.Second

// Probe answers "what is the newest published version of this tool?".
// Implementations must respect the context deadline; any transport, status
// or decoding failure is returned as an error and the caller treats it as
// "no answer".
type Probe interface {
	Latest(ctx context.Context, tool string) (string, error)
}

// CratesIO queries the crates.io JSON API for a crate's max published
// version.
type CratesIO struct {
	BaseURL string
	Client  *http.Client
}

// NewCratesIO returns a probe against the public crates.io API.
func NewCratesIO() *CratesIO {
	return &CratesIO{
		BaseURL: "https://crates.io",
		Client:  &http.Client{Timeout: FetchTimeout},
	}
}

func (r *CratesIO) Latest(ctx context.Context, tool string) (string, error) {
	u := fmt.Sprintf("%s/api/v1/crates/%s", r.BaseURL, url.PathEscape(tool))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	// crates.io rejects requests without a UA
	req.Header.Set("User-Agent", tool+"/version-check")
	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("crates.io: unexpected status %s", resp.Status)
	}
	var data struct {
		Crate struct {
			MaxVersion string `json:"max_version"`
		} `json:"crate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.Crate.MaxVersion == "" {
		return "", fmt.Errorf("crates.io: no version for %s", tool)
	}
	return data.Crate.MaxVersion, nil
}

// NPM queries the npm registry for a package's "latest" dist-tag.
type NPM struct {
	BaseURL string
	Client  *http.Client
}

// NewNPM returns a probe against the public npm registry.
func NewNPM() *NPM {
	return &NPM{
		BaseURL: "https://registry.npmjs.org",
		Client:  &http.Client{Timeout: FetchTimeout},
	}
}

func (r *NPM) Latest(ctx context.Context, tool string) (string, error) {
	u := fmt.Sprintf("%s/%s/latest", r.BaseURL, url.PathEscape(tool))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("npm registry: unexpected status %s", resp.Status)
	}
	var data struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if data.Version == "" {
		return "", fmt.Errorf("npm registry: no version for %s", tool)
	}
	return data.Version, nil
}
