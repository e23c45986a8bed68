package kvstore

import "strings"

// sslMode extracts sslmode from postgres extras such as "sslmode=require TimeZone=UTC".
func sslMode(extras string) string {
	for _, part := range strings.Fields(extras) {
		if value, ok := strings.CutPrefix(part, "sslmode="); ok {
			return value
		}
	}

	return "disable"
}
