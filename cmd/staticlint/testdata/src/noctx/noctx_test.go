package noctx

import (
	"net/http"
	"testing"
)

func TestFetch(t *testing.T) {
	resp, err := http.Get("http://localhost")
	if err == nil {
		resp.Body.Close()
	}
}
