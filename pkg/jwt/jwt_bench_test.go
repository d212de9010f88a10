package jwt_test

import (
	"testing"
	"time"

	"github.com/sandeepprabhakula/jwtabstract/pkg/jwt"
)

func BenchmarkGenerate(b *testing.B) {
	svc := jwt.New()
	claims := map[string]any{"role": "admin", "tenant": "acme"}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := svc.Generate(secret, "alice", claims, time.Hour); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractAllClaims(b *testing.B) {
	svc := jwt.New()
	token, err := svc.Generate(secret, "alice", map[string]any{"role": "admin"}, time.Hour)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := svc.ExtractAllClaims(secret, token); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractAllClaimsParallel(b *testing.B) {
	svc := jwt.New()
	token, err := svc.Generate(secret, "alice", map[string]any{"role": "admin"}, time.Hour)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.ExtractAllClaims(secret, token); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkRejectTampered(b *testing.B) {
	svc := jwt.New()
	token, err := svc.Generate(secret, "alice", nil, time.Hour)
	if err != nil {
		b.Fatal(err)
	}
	forged := token[:len(token)-2] + "AA"

	b.ReportAllocs()
	for b.Loop() {
		if _, err := svc.ExtractAllClaims(secret, forged); err == nil {
			b.Fatal("expected error")
		}
	}
}
