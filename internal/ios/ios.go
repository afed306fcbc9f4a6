// Package ios reads battery state from USB-connected iOS devices through
// the libimobiledevice tools.
package ios

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shiptools/shiptools/internal/battery"
)

// ErrMultipleDevices indicates more than one device is connected and no
// UDID was given to pick one.
var ErrMultipleDevices = errors.New("multiple iOS devices detected, select one by UDID")

// ErrNoBatteryData indicates the device returned no battery information.
var ErrNoBatteryData = errors.New("no battery data returned from iOS device")

// Client talks to the libimobiledevice command line tools.
type Client struct {
	run battery.Runner
}

// NewClient builds a client. A nil runner uses os/exec.
func NewClient(run battery.Runner) *Client {
	if run == nil {
		run = battery.ExecRunner
	}

	return &Client{run: run}
}

// ListDevices returns the UDIDs of connected devices.
func (c *Client) ListDevices(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "idevice_id", "-l")
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	var devices []string

	for _, line := range strings.Split(string(out), "\n") {
		if udid := strings.TrimSpace(line); udid != "" {
			devices = append(devices, udid)
		}
	}

	return devices, nil
}

// ResolveUDID picks the target device: an explicit UDID wins, a single
// connected device is used as is, and anything more is an error.
func (c *Client) ResolveUDID(ctx context.Context, udid string) (string, error) {
	if udid != "" {
		return udid, nil
	}

	devices, err := c.ListDevices(ctx)
	if err != nil {
		return "", err
	}

	switch len(devices) {
	case 0:
		return "", nil
	case 1:
		return devices[0], nil
	}

	return "", fmt.Errorf("%w: %s", ErrMultipleDevices, strings.Join(devices, ", "))
}

// DeviceName returns the device name, or "" when it cannot be read.
func (c *Client) DeviceName(ctx context.Context, udid string) string {
	args := []string{"-k", "DeviceName"}
	if udid != "" {
		args = append([]string{"-u", udid}, args...)
	}

	out, err := c.run(ctx, "ideviceinfo", args...)
	if err != nil {
		return ""
	}

	name := strings.TrimSpace(string(out))
	if idx := strings.Index(name, ":"); idx >= 0 {
		name = strings.TrimSpace(name[idx+1:])
	}

	return name
}

// BatteryInfo reads the battery domain from the device.
func (c *Client) BatteryInfo(ctx context.Context, udid string) (*Info, error) {
	args := []string{"-q", "com.apple.mobile.battery"}
	if udid != "" {
		args = append([]string{"-u", udid}, args...)
	}

	out, err := c.run(ctx, "ideviceinfo", args...)
	if err != nil {
		return nil, fmt.Errorf("read iOS battery info: %w", err)
	}

	if strings.TrimSpace(string(out)) == "" {
		return nil, ErrNoBatteryData
	}

	info := ParseInfo(string(out))
	info.UDID = udid
	info.RawText = string(out)
	info.DeviceName = c.DeviceName(ctx, udid)

	return info, nil
}
