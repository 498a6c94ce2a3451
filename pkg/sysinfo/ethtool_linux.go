//go:build linux

/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sysinfo

import (
	"strings"

	"golang.org/x/sys/unix"
)

// ethtoolDriverInfo issues ETHTOOL_GDRVINFO on iface. The driver version is reported as
// "<driver> <version>".
func ethtoolDriverInfo(iface string) (driver, firmware string, err error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return "", "", err
	}
	defer func() {
		_ = unix.Close(fd)
	}()

	info, err := unix.IoctlGetEthtoolDrvinfo(fd, iface)
	if err != nil {
		return "", "", err
	}

	driver = strings.TrimSpace(unix.ByteSliceToString(info.Driver[:]) + " " + unix.ByteSliceToString(info.Version[:]))
	firmware = unix.ByteSliceToString(info.Fw_version[:])

	return driver, firmware, nil
}
