package noctx

import (
	"context"
	"net/http"
)

func fetch(ctx context.Context, url string) error {
	resp, err := http.Get(url) // want "http.Get sends a request without context"
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, url, nil) // want "http.NewRequest sends a request without context"
	if err != nil {
		return err
	}
	_ = req

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	_, err = http.DefaultClient.Do(req)
	return err
}
