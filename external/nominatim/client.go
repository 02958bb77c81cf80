package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const userAgent = "wanderly-api/1.0"

type QueryResult struct {
	PlaceID     int     `json:"place_id"`
	OSMType     string  `json:"osm_type"`
	OSMID       int     `json:"osm_id"`
	Latitude    float64 `json:"lat,string"`
	Longitude   float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

type NominatimClient struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *NominatimClient {
	return &NominatimClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *NominatimClient) Query(ctx context.Context, query string) ([]QueryResult, error) {
	q := url.URL{
		Path: "search",
		RawQuery: url.Values{
			"q":      []string{query},
			"format": []string{"json"},
			"limit":  []string{"1"},
		}.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", n.endpoint, q.String())
	log.WithField("prefix", "nominatim").WithField("req", reqString).Debug("request from nominatim")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqString, nil)
	if err != nil {
		return nil, err
	}
	// nominatim rejects requests without an identifying agent
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		dumpBytes, err := httputil.DumpResponse(resp, true)
		if err != nil {
			log.WithField("prefix", "nominatim").WithError(err).Error("fail to dump response")
		}
		log.WithField("prefix", "nominatim").WithField("resp", string(dumpBytes)).Error("error response from nominatim")
		return nil, fmt.Errorf("fail to query address")
	}

	var result []QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	log.WithField("prefix", "nominatim").WithField("results", len(result)).Debug("response from nominatim")

	return result, nil
}
