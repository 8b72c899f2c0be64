package tlsroots

import (
	"crypto/tls"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPool_AddCertPEM(t *testing.T) {
	a := newTestPair(t, 1)
	b := newTestPair(t, 2)

	tests := []struct {
		name    string
		data    []byte
		added   int
		wantErr error
	}{
		{"single", a.certPEM, 1, nil},
		{"bundle", append(append([]byte{}, a.certPEM...), b.certPEM...), 2, nil},
		{"cert with key", append(append([]byte{}, a.keyPEM...), a.certPEM...), 1, nil},
		{"key only", a.keyPEM, 0, ErrNoCertsFound},
		{"empty", nil, 0, ErrNoCertsFound},
		{"garbage", []byte("not pem"), 0, ErrNoCertsFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewEmptyPool()
			err := p.AddCertPEM(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddCertPEM() err = %v, want %v", err, tt.wantErr)
			}
			if p.Added() != tt.added {
				t.Errorf("Added() = %d, want %d", p.Added(), tt.added)
			}
		})
	}
}

func TestPool_AddCertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(path, newTestPair(t, 7).certPEM, 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewPool()
	if err := p.AddCertFile(path); err != nil {
		t.Fatalf("AddCertFile() error = %v", err)
	}
	if p.Added() != 1 {
		t.Errorf("Added() = %d, want 1", p.Added())
	}

	if err := p.AddCertFile(filepath.Join(dir, "missing.pem")); err == nil {
		t.Error("AddCertFile(missing) should fail")
	}
}

func TestPool_ClientConfig(t *testing.T) {
	p := NewEmptyPool()
	cfg := p.ClientConfig()
	if cfg.RootCAs != p.CertPool() {
		t.Error("ClientConfig() should trust the pool")
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x, want TLS 1.2", cfg.MinVersion)
	}
}
