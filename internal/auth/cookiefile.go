package auth

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FileProvider reads cookies from a Netscape-format cookies.txt export, the
// same file every common exporter and downloader tool understands. The file
// is re-read whenever its mtime changes, so replacing the export after a
// re-login is picked up without restarting the daemon.
type FileProvider struct {
	path string

	mu        sync.Mutex
	loadedAt  time.Time
	cookies   []Cookie
	listeners []func()
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// OnChange registers a callback invoked after the file has been reloaded
// with different content. Callbacks run on the goroutine that triggered the
// reload and must not block.
func (p *FileProvider) OnChange(fn func()) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

func (p *FileProvider) AllCookies() ([]Cookie, error) {
	if err := p.refresh(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Cookie, len(p.cookies))
	copy(out, p.cookies)
	return out, nil
}

func (p *FileProvider) CookiesForDomain(domain string) ([]Cookie, error) {
	all, err := p.AllCookies()
	if err != nil {
		return nil, err
	}
	var out []Cookie
	for _, c := range all {
		if matchDomain(c.Domain, domain) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (p *FileProvider) refresh() error {
	info, err := os.Stat(p.path)
	if err != nil {
		return fmt.Errorf("cookie file: %w", err)
	}

	p.mu.Lock()
	if !p.loadedAt.IsZero() && !info.ModTime().After(p.loadedAt) {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("cookie file: %w", err)
	}
	parsed := parseCookieFile(string(data))

	p.mu.Lock()
	changed := !p.loadedAt.IsZero() && !equalCookies(p.cookies, parsed)
	p.cookies = parsed
	p.loadedAt = info.ModTime()
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn()
		}
	}
	return nil
}

// parseCookieFile understands the seven-column Netscape format:
// domain, include-subdomains flag, path, secure flag, expiry (unix seconds,
// 0 for session cookies), name, value. Lines starting with # are comments,
// except the #HttpOnly_ prefix some exporters emit on the domain column.
func parseCookieFile(data string) []Cookie {
	var out []Cookie
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		httpOnly := false
		if strings.HasPrefix(line, "#HttpOnly_") {
			httpOnly = true
			line = strings.TrimPrefix(line, "#HttpOnly_")
		} else if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}
		c := Cookie{
			Name:     fields[5],
			Value:    fields[6],
			Domain:   fields[0],
			Path:     fields[2],
			Secure:   strings.EqualFold(fields[3], "TRUE"),
			HTTPOnly: httpOnly,
		}
		if secs, err := strconv.ParseInt(fields[4], 10, 64); err == nil && secs > 0 {
			c.Expires = time.Unix(secs, 0)
		}
		out = append(out, c)
	}
	return out
}

func equalCookies(a, b []Cookie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Expires.Equal(b[i].Expires) {
			return false
		}
		x, y := a[i], b[i]
		x.Expires, y.Expires = time.Time{}, time.Time{}
		if x != y {
			return false
		}
	}
	return true
}
