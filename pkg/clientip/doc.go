// Package clientip extracts client IP addresses from HTTP requests.
//
// GetIP checks proxy headers in priority order and falls back to RemoteAddr:
//  1. CF-Connecting-IP
//  2. DO-Connecting-IP
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Values are parsed and normalized with net.ParseIP; invalid and unspecified
// addresses (0.0.0.0, ::) are skipped. RemoteIP ignores headers entirely and is
// the right choice when the service is reachable without a trusted proxy, since
// clients can set any header they like.
//
//	ip := clientip.GetIP(r)
//	key := "login:" + ip
package clientip
