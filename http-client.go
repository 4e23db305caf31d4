package main

import (
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

func createCustomHTTPClient(userAgent string, insecure bool, httpTimeout string) (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: insecure,
		},
	}

	customTimeout, err := time.ParseDuration(httpTimeout)
	if err != nil {
		return nil, fmt.Errorf("unable to parse HTTP timeout value %q: %w", httpTimeout, err)
	}

	client := &http.Client{
		Timeout: customTimeout,
		// Set the User-Agent header globally for this client
		Transport: &customTransport{
			Transport: transport,
			UserAgent: userAgent,
		},
	}

	return client, nil
}

// customTransport is a custom http.RoundTripper that sets the User-Agent header
type customTransport struct {
	Transport http.RoundTripper
	UserAgent string
}

func (t *customTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.UserAgent)
	return t.Transport.RoundTrip(req)
}

// getURL returns the body of url, or a *RequestFailedError when the server
// does not answer 200 OK.
func getURL(client *http.Client, url string) ([]byte, error) {
	slog.Debug(fmt.Sprintf("Getting %s", url))

	response, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error sending GET request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, &RequestFailedError{
			URL:        url,
			Item:       url,
			StatusCode: response.StatusCode,
			Status:     response.Status,
		}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return body, nil
}
