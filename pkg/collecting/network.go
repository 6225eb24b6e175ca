package collecting

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"golang.org/x/sys/unix"

	"panelstat/pkg/probing"
)

// AddressQuery returns the IPv4 address bound to an interface. On failure the
// returned address is whatever the query left behind, normally all zeros.
type AddressQuery func(ifname string) ([4]byte, error)

type Network struct {
	timeout time.Duration
	logger  *slog.Logger
	query   AddressQuery
}

func NewNetwork(timeout time.Duration, logger *slog.Logger) *Network {
	return &Network{timeout: timeout, logger: logger, query: ioctlAddress}
}

func (c *Network) Name() string { return "Network" }

// ReadIPv4Address formats the address of ifname as dotted decimal. An
// interface without an address reads as 0.0.0.0.
func (c *Network) ReadIPv4Address(ctx context.Context, ifname string) string {
	ifname = truncateInterfaceName(ifname)

	addr, err := probing.WithTimeout(ctx, c.timeout, func() ([4]byte, error) {
		return c.query(ifname)
	})
	if err != nil {
		c.logger.Debug("no ipv4 address", "interface", ifname, "error", err)
	}
	return netip.AddrFrom4(addr).String()
}

func truncateInterfaceName(ifname string) string {
	if len(ifname) > unix.IFNAMSIZ-1 {
		return ifname[:unix.IFNAMSIZ-1]
	}
	return ifname
}

// ioctlAddress issues SIOCGIFADDR on a throwaway datagram socket.
func ioctlAddress(ifname string) ([4]byte, error) {
	var addr [4]byte

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return addr, fmt.Errorf("%w: socket: %w", ErrSourceUnavailable, err)
	}
	defer unix.Close(fd)

	ifr, err := unix.NewIfreq(ifname)
	if err != nil {
		return addr, fmt.Errorf("%w: interface %q: %w", ErrMalformedData, ifname, err)
	}
	// Marks the request AF_INET, matching what SIOCGIFADDR fills in.
	if err := ifr.SetInet4Addr(addr[:]); err != nil {
		return addr, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	if err := unix.IoctlIfreq(fd, unix.SIOCGIFADDR, ifr); err != nil {
		return addr, fmt.Errorf("%w: SIOCGIFADDR %s: %w", ErrSourceUnavailable, ifname, err)
	}

	ip, err := ifr.Inet4Addr()
	if err != nil {
		return addr, fmt.Errorf("%w: %s: %w", ErrMalformedData, ifname, err)
	}
	copy(addr[:], ip)
	return addr, nil
}
