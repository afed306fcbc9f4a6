package ios_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/ios"
)

const infoFixture = `BatteryCurrentCapacity: 73
BatteryIsCharging: true
BatteryIsFullyCharged: false
ExternalConnected: true
CycleCount: 412
BatteryTimeToFull: 64
`

func TestParseInfo_Fixture(t *testing.T) {
	t.Parallel()

	info := ios.ParseInfo(infoFixture)

	require.True(t, info.HasPercent)
	assert.Equal(t, 73, info.Percent)
	assert.Equal(t, 412, info.CycleCount)
	assert.Equal(t, "charging", info.Status())
	assert.Equal(t, "1:04 until full", info.TimeRemaining())
}

func TestInfo_StatusDerivation(t *testing.T) {
	t.Parallel()

	full := ios.ParseInfo("BatteryIsFullyCharged: true\nBatteryIsCharging: false\n")
	assert.Equal(t, "fully charged", full.Status())

	discharging := ios.ParseInfo("BatteryIsCharging: false\n")
	assert.Equal(t, "discharging", discharging.Status())

	connected := ios.ParseInfo("ExternalConnected: true\n")
	assert.Equal(t, "connected", connected.Status())

	unknown := ios.ParseInfo("DeviceColor: blue\n")
	assert.Equal(t, "Unknown", unknown.Status())
}

func TestInfo_TimeToEmpty(t *testing.T) {
	t.Parallel()

	info := ios.ParseInfo("BatteryIsCharging: false\nBatteryTimeToEmpty: 200\n")
	assert.Equal(t, "3:20 remaining", info.TimeRemaining())
}

func TestClient_ResolveUDID(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, name string, _ ...string) ([]byte, error) {
		if name == "idevice_id" {
			return []byte("00008110-AAAA\n00008110-BBBB\n"), nil
		}

		return nil, errors.New("unexpected command")
	}

	client := ios.NewClient(run)

	udid, err := client.ResolveUDID(context.Background(), "explicit")
	require.NoError(t, err)
	assert.Equal(t, "explicit", udid)

	_, err = client.ResolveUDID(context.Background(), "")
	require.ErrorIs(t, err, ios.ErrMultipleDevices)
}

func TestClient_ResolveUDID_SingleDevice(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("00008110-AAAA\n"), nil
	}

	udid, err := ios.NewClient(run).ResolveUDID(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "00008110-AAAA", udid)
}

func TestClient_BatteryInfo(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		require.Equal(t, "ideviceinfo", name)

		if args[len(args)-1] == "DeviceName" {
			return []byte("Kaveh's iPhone\n"), nil
		}

		assert.Equal(t, []string{"-u", "00008110-AAAA", "-q", "com.apple.mobile.battery"}, args)

		return []byte(infoFixture), nil
	}

	info, err := ios.NewClient(run).BatteryInfo(context.Background(), "00008110-AAAA")
	require.NoError(t, err)
	assert.Equal(t, "Kaveh's iPhone", info.DeviceName)
	assert.Equal(t, "00008110-AAAA", info.UDID)
	assert.Equal(t, 73, info.Percent)
	assert.Equal(t, infoFixture, info.RawText)
}

func TestClient_BatteryInfo_Empty(t *testing.T) {
	t.Parallel()

	run := func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("\n"), nil
	}

	_, err := ios.NewClient(run).BatteryInfo(context.Background(), "")
	require.ErrorIs(t, err, ios.ErrNoBatteryData)
}
