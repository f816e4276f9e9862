package wsdl

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
)

// Loader fetches WSDL documents from the filesystem or, when enabled, over
// HTTP, and runs extraction on them.
type Loader struct {
	// BaseDir anchors relative locations.
	BaseDir string

	// AllowRemote enables http/https locations. Disabled by default.
	AllowRemote bool

	opts       Options
	httpClient *http.Client
}

// NewLoader returns a loader resolving relative locations against baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		BaseDir:    baseDir,
		opts:       NewOptions(),
		httpClient: &http.Client{},
	}
}

// SetOptions sets the extraction options used by Load.
func (l *Loader) SetOptions(opts Options) {
	l.opts = opts
}

// Load resolves location, fetches the document and extracts its model.
func (l *Loader) Load(location string) (*Definitions, error) {
	resolved, err := l.resolveLocation(location)
	if err != nil {
		return nil, err
	}

	doc, err := l.loadDocument(resolved)
	if err != nil {
		return nil, err
	}

	l.opts.log().Debug().Str("location", resolved).Msg("loaded wsdl document")
	return ParseDocument(doc, l.opts)
}

// resolveLocation resolves a location to an absolute path or URL.
func (l *Loader) resolveLocation(location string) (string, error) {
	if isURL(location) {
		if !l.AllowRemote {
			return "", fmt.Errorf("remote wsdl loading is disabled")
		}
		return location, nil
	}
	if filepath.IsAbs(location) {
		return location, nil
	}
	if l.BaseDir != "" {
		return filepath.Abs(filepath.Join(l.BaseDir, location))
	}
	return filepath.Abs(location)
}

// loadDocument reads and decodes an XML document from a path or URL.
func (l *Loader) loadDocument(location string) (xmldom.Document, error) {
	var reader io.ReadCloser

	if isURL(location) {
		resp, err := l.httpClient.Get(location)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, location)
		}
		reader = resp.Body
	} else {
		file, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", location, err)
		}
		reader = file
	}
	defer reader.Close()

	doc, err := xmldom.Decode(reader)
	if err != nil {
		return nil, parseError(err)
	}
	return doc, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
