package java

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
)

// URLString is a URL that marshals to its string form, or to null when
// empty.
type URLString struct {
	url.URL
}

func FileURL(path string) URLString {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return URLString{
		URL: url.URL{
			Scheme: "file",
			Path:   filepath.ToSlash(path),
		},
	}
}

// PathFromURI converts a file:// URI as sent by editors to a local path.
func PathFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse uri %q: %w", uri, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return "", fmt.Errorf("uri %q: unsupported scheme %q", uri, u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}

func (u URLString) IsZero() bool {
	return u.URL.Scheme == "" && u.URL.Host == "" && u.URL.Path == ""
}

func (u URLString) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(u.URL.String())
}

func (u URLString) MarshalYAML() (interface{}, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.URL.String(), nil
}
