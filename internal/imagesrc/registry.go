package imagesrc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
)

// Resolver opens the bytes behind an image reference.
type Resolver func(ctx context.Context, ref string) (io.ReadCloser, error)

// ErrUnsupportedScheme is returned when no resolver handles a reference.
var ErrUnsupportedScheme = errors.New("imagesrc: unsupported scheme")

var (
	resolversMu sync.RWMutex
	resolvers   = map[string]Resolver{}
)

// Register adds a resolver for the given URI scheme, replacing any previous one.
func Register(scheme string, r Resolver) {
	if scheme == "" || r == nil {
		return
	}
	resolversMu.Lock()
	defer resolversMu.Unlock()
	resolvers[strings.ToLower(scheme)] = r
}

// Schemes lists the registered schemes in sorted order.
func Schemes() []string {
	resolversMu.RLock()
	defer resolversMu.RUnlock()
	out := make([]string, 0, len(resolvers))
	for s := range resolvers {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Open resolves ref with the resolver registered for its scheme. References
// without a scheme, and Windows drive paths, are treated as local files.
func Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	scheme := schemeOf(ref)
	resolversMu.RLock()
	r, ok := resolvers[scheme]
	resolversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnsupportedScheme, scheme, strings.Join(Schemes(), ", "))
	}
	return r(ctx, ref)
}

func schemeOf(ref string) string {
	i := strings.Index(ref, ":")
	if i <= 1 {
		return "file"
	}
	scheme := strings.ToLower(ref[:i])
	for _, c := range scheme {
		if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != '.' {
			return "file"
		}
	}
	return scheme
}

func openFile(_ context.Context, ref string) (io.ReadCloser, error) {
	path := ref
	if strings.HasPrefix(strings.ToLower(ref), "file:") {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, fmt.Errorf("parse file uri: %w", err)
		}
		path = u.Path
	}
	return os.Open(path)
}

func openHTTP(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", ref, resp.Status)
	}
	return resp.Body, nil
}

// openData decodes RFC 2397 "data:" references.
func openData(_ context.Context, ref string) (io.ReadCloser, error) {
	meta, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, errors.New("data uri: missing ','")
	}
	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("data uri: %w", err)
		}
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("data uri: %w", err)
	}
	return io.NopCloser(strings.NewReader(s)), nil
}

func init() {
	Register("file", openFile)
	Register("http", openHTTP)
	Register("https", openHTTP)
	Register("data", openData)
}
