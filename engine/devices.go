// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gen2brain/malgo"
)

// DeviceInfo describes one host audio input device.
//
// IsLoopback is a heuristic: a case-insensitive "loopback" substring in the
// device name. It surfaces system-audio-capture devices (stereo mix,
// monitor sources) to the caller and is not a guaranteed property.
type DeviceInfo struct {
	ID         string
	Name       string
	Channels   int
	IsLoopback bool
}

// ListInputDevices enumerates the host's audio capture devices. The ID field
// is the value to pass to StartRecording to select the device.
func (e *Engine) ListInputDevices() ([]DeviceInfo, error) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, ErrEngineClosed
	}

	infos, err := e.ctx.Devices(malgo.Capture)
	if err != nil {
		return nil, fmt.Errorf("%w: enumerate capture devices: %v", ErrDevice, err)
	}

	devices := make([]DeviceInfo, 0, len(infos))
	for i := range infos {
		name := infos[i].Name()

		id, err := hexToASCII(infos[i].ID.String())
		if err != nil {
			id = infos[i].ID.String()
		}

		channels := 0
		if infos[i].FormatCount > 0 {
			channels = int(infos[i].Formats[0].Channels)
		}

		devices = append(devices, DeviceInfo{
			ID:         id,
			Name:       name,
			Channels:   channels,
			IsLoopback: strings.Contains(strings.ToLower(name), "loopback"),
		})
	}

	return devices, nil
}

// matchInputDevice finds the capture device whose decoded id or name matches
// selector, trying exact name, exact id, then name substring.
func matchInputDevice(infos []malgo.DeviceInfo, selector string) (*malgo.DeviceInfo, error) {
	for i := range infos {
		if infos[i].Name() == selector {
			return &infos[i], nil
		}
	}

	for i := range infos {
		if id, err := hexToASCII(infos[i].ID.String()); err == nil && id == selector {
			return &infos[i], nil
		}
	}

	for i := range infos {
		if strings.Contains(infos[i].Name(), selector) {
			return &infos[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNoDevice, selector)
}

// hexToASCII converts a hexadecimal string to an ASCII string, dropping the
// zero padding backends leave in fixed-size id fields.
func hexToASCII(hexStr string) (string, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\x00"), nil
}
