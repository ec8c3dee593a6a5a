// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"regexp"
	"strings"
)

// Characters Windows forbids in a path component, plus ASCII control chars.
var (
	illegalChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingJunk  = regexp.MustCompile(`[. ]+$`)
	reservedNames = buildReservedNames()
)

func buildReservedNames() map[string]bool {
	names := map[string]bool{"CON": true, "PRN": true, "AUX": true, "NUL": true}
	for _, base := range []string{"COM", "LPT"} {
		for d := '1'; d <= '9'; d++ {
			names[base+string(d)] = true
		}
	}
	return names
}

// SanitizeComponent makes one path component safe on every filesystem the
// engine targets. Illegal characters become underscores, trailing dots and
// spaces are removed, an empty result becomes a lone underscore, and reserved
// device names (CON, NUL, COM1, ...) get an underscore appended. Internal
// spaces are kept; normalize them before calling.
func SanitizeComponent(name string) string {
	out := illegalChars.ReplaceAllString(name, "_")
	out = trailingJunk.ReplaceAllString(out, "")
	if out == "" {
		return "_"
	}
	base, _, _ := strings.Cut(out, ".")
	if reservedNames[strings.ToUpper(base)] {
		out += "_"
	}
	return out
}
