package collecting

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNetwork_FormatsAddress(t *testing.T) {
	c := NewNetwork(0, discardLogger())
	c.query = func(ifname string) ([4]byte, error) {
		if ifname != "eth0" {
			t.Errorf("query(%q); want eth0", ifname)
		}
		return [4]byte{192, 168, 1, 42}, nil
	}

	if got := c.ReadIPv4Address(context.Background(), "eth0"); got != "192.168.1.42" {
		t.Errorf("ReadIPv4Address() = %q; want %q", got, "192.168.1.42")
	}
}

func TestNetwork_UnboundInterfaceIsZero(t *testing.T) {
	c := NewNetwork(0, discardLogger())
	c.query = func(string) ([4]byte, error) {
		return [4]byte{}, errors.New("cannot assign requested address")
	}

	if got := c.ReadIPv4Address(context.Background(), "wlan0"); got != "0.0.0.0" {
		t.Errorf("ReadIPv4Address() = %q; want %q", got, "0.0.0.0")
	}
}

func TestNetwork_TruncatesInterfaceName(t *testing.T) {
	var seen string
	c := NewNetwork(0, discardLogger())
	c.query = func(ifname string) ([4]byte, error) {
		seen = ifname
		return [4]byte{10, 0, 0, 1}, nil
	}

	c.ReadIPv4Address(context.Background(), "averyveryverylonginterface")
	if seen != "averyveryverylo" {
		t.Errorf("query name = %q; want %q", seen, "averyveryverylo")
	}
}

func TestNetwork_TimeoutIsZero(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	c := NewNetwork(10*time.Millisecond, discardLogger())
	c.query = func(string) ([4]byte, error) {
		<-release
		return [4]byte{10, 0, 0, 1}, nil
	}

	if got := c.ReadIPv4Address(context.Background(), "eth0"); got != "0.0.0.0" {
		t.Errorf("ReadIPv4Address() = %q; want %q", got, "0.0.0.0")
	}
}

func TestIoctlAddress_Loopback(t *testing.T) {
	addr, err := ioctlAddress("lo")
	if err != nil {
		t.Skipf("Skipping: loopback query unavailable: %v", err)
	}
	if addr != [4]byte{127, 0, 0, 1} {
		t.Errorf("ioctlAddress(lo) = %v; want 127.0.0.1", addr)
	}
}

func TestIoctlAddress_UnknownInterface(t *testing.T) {
	addr, err := ioctlAddress("nosuchif0")
	if err == nil {
		t.Fatal("ioctlAddress(nosuchif0) error = nil; want error")
	}
	if addr != [4]byte{} {
		t.Errorf("ioctlAddress(nosuchif0) = %v; want zero address", addr)
	}
}
