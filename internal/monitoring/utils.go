package monitoring

import "strings"

// getSegmentName trims the module path and keeps package.Receiver.Method.
func getSegmentName(funcName string) string {
	parts := strings.Split(funcName, "/")
	segment := parts[len(parts)-1]
	segment = strings.ReplaceAll(segment, "(", "")
	segment = strings.ReplaceAll(segment, ")", "")
	segment = strings.ReplaceAll(segment, "*", "")

	return segment
}
