// Package congress is a thin client for the congress.gov v3 API.
package congress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/billboard-app/core/internal/config"
)

// ErrNoText is returned when a bill has no published text version.
var ErrNoText = errors.New("no text version available")

// Client calls the congress.gov API. All calls are bounded by the
// configured timeout and carry the API key as a query parameter.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.CongressConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// BillInfo is one entry of the bill list endpoint.
type BillInfo struct {
	Congress     int    `json:"congress"`
	Type         string `json:"type"`
	Number       string `json:"number"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	LatestAction struct {
		ActionDate string `json:"actionDate"`
		Text       string `json:"text"`
	} `json:"latestAction"`
}

// TextVersion is one published text revision of a bill.
type TextVersion struct {
	Date    string       `json:"date"`
	Type    string       `json:"type"`
	Formats []TextFormat `json:"formats"`
}

// TextFormat is one downloadable rendering of a text version.
type TextFormat struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// CosponsorInfo is a bill cosponsor plus the member's portrait URL.
type CosponsorInfo struct {
	BioguideID          string `json:"bioguide_id"`
	FirstName           string `json:"first_name"`
	MiddleName          string `json:"middle_name"`
	LastName            string `json:"last_name"`
	FullName            string `json:"full_name"`
	Party               string `json:"party"`
	State               string `json:"state"`
	District            *int   `json:"district"`
	IsOriginalCosponsor bool   `json:"is_original_cosponsor"`
	SponsorshipDate     string `json:"sponsorship_date"`
	URL                 string `json:"url"`
	ImageURL            string `json:"img_url"`
}

// FetchRecentBills lists bills sorted by latest action, newest first.
func (c *Client) FetchRecentBills(ctx context.Context, limit int) ([]BillInfo, error) {
	var payload struct {
		Bills []BillInfo `json:"bills"`
	}
	path := fmt.Sprintf("/bill?limit=%d&sort=updateDate+desc", limit)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Bills, nil
}

// FetchTextSources returns the most recent text version of a bill.
// Bills with an empty version list yield ErrNoText.
func (c *Client) FetchTextSources(ctx context.Context, congress int, billType, billNumber string) (*TextVersion, error) {
	var payload struct {
		TextVersions []TextVersion `json:"textVersions"`
	}
	path := fmt.Sprintf("/bill/%d/%s/%s/text", congress, strings.ToLower(billType), billNumber)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	if len(payload.TextVersions) == 0 {
		return nil, ErrNoText
	}
	// The API lists versions oldest-first; the last entry is current.
	latest := payload.TextVersions[len(payload.TextVersions)-1]
	return &latest, nil
}

// FetchTextHTML follows the first format URL of the latest text version and
// returns the raw markup body.
func (c *Client) FetchTextHTML(ctx context.Context, congress int, billType, billNumber string) (string, error) {
	src, err := c.FetchTextSources(ctx, congress, billType, billNumber)
	if err != nil {
		return "", err
	}
	if len(src.Formats) == 0 {
		return "", ErrNoText
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Formats[0].URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch bill text: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("fetch bill text: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchCosponsors lists a bill's cosponsors, resolving each member's
// portrait from the member endpoint. A bill without cosponsors returns an
// empty slice.
func (c *Client) FetchCosponsors(ctx context.Context, congress int, billType, billNumber string) ([]CosponsorInfo, error) {
	var payload struct {
		Cosponsors []struct {
			BioguideID          string `json:"bioguideId"`
			FirstName           string `json:"firstName"`
			MiddleName          string `json:"middleName"`
			LastName            string `json:"lastName"`
			FullName            string `json:"fullName"`
			Party               string `json:"party"`
			State               string `json:"state"`
			District            *int   `json:"district"`
			IsOriginalCosponsor bool   `json:"isOriginalCosponsor"`
			SponsorshipDate     string `json:"sponsorshipDate"`
			URL                 string `json:"url"`
		} `json:"cosponsors"`
	}
	path := fmt.Sprintf("/bill/%d/%s/%s/cosponsors", congress, strings.ToLower(billType), billNumber)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	out := make([]CosponsorInfo, 0, len(payload.Cosponsors))
	for _, raw := range payload.Cosponsors {
		info := CosponsorInfo{
			BioguideID:          raw.BioguideID,
			FirstName:           raw.FirstName,
			MiddleName:          raw.MiddleName,
			LastName:            raw.LastName,
			FullName:            raw.FullName,
			Party:               raw.Party,
			State:               raw.State,
			District:            raw.District,
			IsOriginalCosponsor: raw.IsOriginalCosponsor,
			SponsorshipDate:     raw.SponsorshipDate,
			URL:                 raw.URL,
		}
		if img, err := c.fetchMemberImage(ctx, raw.BioguideID); err == nil {
			info.ImageURL = img
		}
		out = append(out, info)
	}
	return out, nil
}

func (c *Client) fetchMemberImage(ctx context.Context, bioguideID string) (string, error) {
	var payload struct {
		Member struct {
			Depiction struct {
				ImageURL string `json:"imageUrl"`
			} `json:"depiction"`
		} `json:"member"`
	}
	if err := c.getJSON(ctx, "/member/"+bioguideID, &payload); err != nil {
		return "", err
	}
	return payload.Member.Depiction.ImageURL, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	u := c.baseURL + path + sep + "api_key=" + neturl.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("congress api: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("congress api: HTTP %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("congress api: decode %s: %w", path, err)
	}
	return nil
}
