package probing

import (
	"os"
	"testing"
)

func BenchmarkFile(b *testing.B) {
	if _, err := os.Stat("/proc/loadavg"); os.IsNotExist(err) {
		b.Skip("Skipping: /proc/loadavg not available")
	}
	for i := 0; i < b.N; i++ {
		File("/proc/loadavg", 64)
	}
}

func BenchmarkLeadingInt(b *testing.B) {
	s := "47236\n"
	for i := 0; i < b.N; i++ {
		LeadingInt(s)
	}
}
